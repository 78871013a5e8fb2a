package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/royale-stats/internal/domain/battle"
	qb "github.com/riskibarqy/royale-stats/internal/platform/querybuilder"
)

type BattleRepository struct {
	db *sqlx.DB
}

func NewBattleRepository(db *sqlx.DB) *BattleRepository {
	return &BattleRepository{db: db}
}

// InsertMany appends logs; existing rows are never touched.
func (r *BattleRepository) InsertMany(ctx context.Context, logs []battle.Log) error {
	if len(logs) == 0 {
		return nil
	}

	rows := make([]battleLogTableModel, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, battleLogToTableModel(l))
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for battle insert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, chunk := range chunks(rows, insertChunkSize) {
		query, args, err := qb.InsertModels("battle_logs", chunk, "")
		if err != nil {
			return fmt.Errorf("build insert battle logs query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert battle logs: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit battle insert tx: %w", err)
	}
	return nil
}

func (r *BattleRepository) ListByPlayer(ctx context.Context, playerID int64, limit int) ([]battle.Log, error) {
	query, args, err := qb.Select(battleColumns...).From("battle_logs").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("battle_time DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select battle logs query: %w", err)
	}

	var rows []battleLogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select battle logs player=%d: %w", playerID, err)
	}

	out := make([]battle.Log, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
