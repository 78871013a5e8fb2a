package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/royale-stats/internal/domain/clan"
	qb "github.com/riskibarqy/royale-stats/internal/platform/querybuilder"
)

type ClanRepository struct {
	db *sqlx.DB
}

func NewClanRepository(db *sqlx.DB) *ClanRepository {
	return &ClanRepository{db: db}
}

func (r *ClanRepository) Upsert(ctx context.Context, c clan.Clan) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for clan upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Select("id").From("clans").
		Where(qb.Eq("tag", c.Tag)).
		Limit(1).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build select clan id query: %w", err)
	}

	row := clanToTableModel(c)
	var id int64
	err = tx.GetContext(ctx, &id, query, args...)
	switch {
	case err == nil:
		builder, err := qb.UpdateModel("clans", row)
		if err != nil {
			return fmt.Errorf("build update clan query: %w", err)
		}
		query, args, err = builder.Where(qb.Eq("id", id)).ToSQL()
		if err != nil {
			return fmt.Errorf("build update clan query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update clan tag=%s: %w", c.Tag, err)
		}
	case isNotFound(err):
		query, args, err = qb.InsertModel("clans", row, "")
		if err != nil {
			return fmt.Errorf("build insert clan query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert clan tag=%s: %w", c.Tag, err)
		}
	default:
		return fmt.Errorf("select clan id tag=%s: %w", c.Tag, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clan upsert tx: %w", err)
	}
	return nil
}

func (r *ClanRepository) GetByTag(ctx context.Context, tag string) (clan.Clan, bool, error) {
	query, args, err := qb.Select(clanColumns...).From("clans").
		Where(qb.Eq("tag", tag)).
		Limit(1).
		ToSQL()
	if err != nil {
		return clan.Clan{}, false, fmt.Errorf("build select clan by tag query: %w", err)
	}

	var row clanTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return clan.Clan{}, false, nil
		}
		return clan.Clan{}, false, fmt.Errorf("select clan by tag: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ClanRepository) List(ctx context.Context) ([]clan.Clan, error) {
	query, args, err := qb.Select(clanColumns...).From("clans").
		OrderBy("tag").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clans query: %w", err)
	}

	var rows []clanTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clans: %w", err)
	}

	out := make([]clan.Clan, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
