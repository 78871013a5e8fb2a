package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/royale-stats/internal/domain/battle"
)

type BattleRepository struct {
	mu       sync.RWMutex
	nextID   int64
	byPlayer map[int64][]battle.Log
}

func NewBattleRepository() *BattleRepository {
	return &BattleRepository{byPlayer: make(map[int64][]battle.Log)}
}

func (r *BattleRepository) InsertMany(_ context.Context, logs []battle.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range logs {
		r.nextID++
		l.ID = r.nextID
		r.byPlayer[l.PlayerID] = append(r.byPlayer[l.PlayerID], l)
	}
	return nil
}

func (r *BattleRepository) ListByPlayer(_ context.Context, playerID int64, limit int) ([]battle.Log, error) {
	r.mu.RLock()
	out := append([]battle.Log(nil), r.byPlayer[playerID]...)
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].BattleTime.Equal(out[j].BattleTime) {
			return out[i].BattleTime.After(out[j].BattleTime)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
