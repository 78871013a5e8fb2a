package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/royale-stats/internal/domain/card"
	qb "github.com/riskibarqy/royale-stats/internal/platform/querybuilder"
)

type CardRepository struct {
	db *sqlx.DB
}

func NewCardRepository(db *sqlx.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) UpsertMany(ctx context.Context, cards []card.Card) error {
	if len(cards) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for card upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	existing, err := existingCardIDs(ctx, tx, cards)
	if err != nil {
		return err
	}

	// A repeated id overwrites its queued insert so the last occurrence wins.
	inserts := make([]cardTableModel, 0, len(cards))
	queued := make(map[int64]int, len(cards))
	for _, c := range cards {
		row := cardToTableModel(c)
		if idx, ok := queued[c.ID]; ok {
			inserts[idx] = row
			continue
		}
		if _, ok := existing[c.ID]; !ok {
			queued[c.ID] = len(inserts)
			inserts = append(inserts, row)
			continue
		}

		builder, err := qb.UpdateModel("cards", row)
		if err != nil {
			return fmt.Errorf("build update card=%d query: %w", c.ID, err)
		}
		query, args, err := builder.Where(qb.Eq("id", c.ID)).ToSQL()
		if err != nil {
			return fmt.Errorf("build update card=%d query: %w", c.ID, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update card=%d: %w", c.ID, err)
		}
	}

	if err := insertCards(ctx, tx, inserts); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit card upsert tx: %w", err)
	}
	return nil
}

func (r *CardRepository) InsertMissing(ctx context.Context, cards []card.Card) error {
	if len(cards) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for card stub insert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	existing, err := existingCardIDs(ctx, tx, cards)
	if err != nil {
		return err
	}

	missing := make([]cardTableModel, 0, len(cards))
	for _, c := range cards {
		if _, ok := existing[c.ID]; ok {
			continue
		}
		existing[c.ID] = struct{}{}
		missing = append(missing, cardToTableModel(c))
	}
	if len(missing) == 0 {
		return nil
	}

	if err := insertCards(ctx, tx, missing); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit card stub insert tx: %w", err)
	}
	return nil
}

func (r *CardRepository) List(ctx context.Context) ([]card.Card, error) {
	query, args, err := qb.Select(cardColumns...).From("cards").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select cards query: %w", err)
	}

	var rows []cardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select cards: %w", err)
	}

	out := make([]card.Card, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func existingCardIDs(ctx context.Context, tx *sqlx.Tx, cards []card.Card) (map[int64]struct{}, error) {
	out := make(map[int64]struct{}, len(cards))
	for _, chunk := range chunks(cards, insertChunkSize) {
		ids := make([]any, 0, len(chunk))
		for _, c := range chunk {
			ids = append(ids, c.ID)
		}

		query, args, err := qb.Select("id").From("cards").
			Where(qb.In("id", ids)).
			ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build select existing cards query: %w", err)
		}

		var found []int64
		if err := tx.SelectContext(ctx, &found, query, args...); err != nil {
			return nil, fmt.Errorf("select existing cards: %w", err)
		}
		for _, id := range found {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

func insertCards(ctx context.Context, tx *sqlx.Tx, rows []cardTableModel) error {
	for _, chunk := range chunks(rows, insertChunkSize) {
		query, args, err := qb.InsertModels("cards", chunk, "")
		if err != nil {
			return fmt.Errorf("build insert cards query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert cards: %w", err)
		}
	}
	return nil
}
