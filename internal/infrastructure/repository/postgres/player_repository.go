package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/royale-stats/internal/domain/player"
	qb "github.com/riskibarqy/royale-stats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Upsert writes the profile keyed by tag and returns the stable row id.
func (r *PlayerRepository) Upsert(ctx context.Context, p player.Player) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx for player upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	id, found, err := playerIDByTag(ctx, tx, p.Tag)
	if err != nil {
		return 0, err
	}

	row := playerToTableModel(p)
	if found {
		builder, err := qb.UpdateModel("players", row)
		if err != nil {
			return 0, fmt.Errorf("build update player query: %w", err)
		}
		query, args, err := builder.
			SetExpr("updated_at", "CURRENT_TIMESTAMP").
			Where(qb.Eq("id", id)).
			ToSQL()
		if err != nil {
			return 0, fmt.Errorf("build update player query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("update player tag=%s: %w", p.Tag, err)
		}
	} else {
		query, args, err := qb.InsertModel("players", row, "RETURNING id")
		if err != nil {
			return 0, fmt.Errorf("build insert player query: %w", err)
		}
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert player tag=%s: %w", p.Tag, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit player upsert tx: %w", err)
	}
	return id, nil
}

func (r *PlayerRepository) GetByTag(ctx context.Context, tag string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns...).From("players").
		Where(qb.Eq("tag", tag)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by tag query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by tag: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerColumns...).From("players").
		OrderBy("tag").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ReplaceDeck swaps the stored deck for cards in one transaction.
// An empty set leaves the stored deck untouched.
func (r *PlayerRepository) ReplaceDeck(ctx context.Context, playerID int64, cards []player.DeckCard) error {
	if len(cards) == 0 {
		return nil
	}
	rows := make([]deckCardTableModel, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, deckCardToTableModel(playerID, c))
	}
	return replaceRows(ctx, r.db, "card_decks", playerID, rows)
}

// ReplaceCollection swaps the stored collection for cards in one transaction.
// An empty set leaves the stored collection untouched.
func (r *PlayerRepository) ReplaceCollection(ctx context.Context, playerID int64, cards []player.CollectionCard) error {
	if len(cards) == 0 {
		return nil
	}
	rows := make([]collectionCardTableModel, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, collectionCardToTableModel(playerID, c))
	}
	return replaceRows(ctx, r.db, "card_collections", playerID, rows)
}

func (r *PlayerRepository) ListDeck(ctx context.Context, playerID int64) ([]player.DeckCard, error) {
	query, args, err := qb.Select(deckColumns...).From("card_decks").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("slot").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select deck query: %w", err)
	}

	var rows []deckCardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select deck player=%d: %w", playerID, err)
	}

	out := make([]player.DeckCard, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) ListCollection(ctx context.Context, playerID int64) ([]player.CollectionCard, error) {
	query, args, err := qb.Select(collectionColumns...).From("card_collections").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("card_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select collection query: %w", err)
	}

	var rows []collectionCardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select collection player=%d: %w", playerID, err)
	}

	out := make([]player.CollectionCard, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func replaceRows[T any](ctx context.Context, db *sqlx.DB, table string, playerID int64, rows []T) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for %s replace: %w", table, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.DeleteFrom(table).
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %s player=%d: %w", table, playerID, err)
	}

	for _, chunk := range chunks(rows, insertChunkSize) {
		query, args, err := qb.InsertModels(table, chunk, "")
		if err != nil {
			return fmt.Errorf("build insert %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s player=%d: %w", table, playerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s replace tx: %w", table, err)
	}
	return nil
}

func playerIDByTag(ctx context.Context, tx *sqlx.Tx, tag string) (int64, bool, error) {
	query, args, err := qb.Select("id").From("players").
		Where(qb.Eq("tag", tag)).
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build select player id query: %w", err)
	}

	var id int64
	if err := tx.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select player id tag=%s: %w", tag, err)
	}
	return id, true, nil
}
