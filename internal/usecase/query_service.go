package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/royale-stats/internal/domain/battle"
	"github.com/riskibarqy/royale-stats/internal/domain/card"
	"github.com/riskibarqy/royale-stats/internal/domain/clan"
	"github.com/riskibarqy/royale-stats/internal/domain/player"
	"github.com/riskibarqy/royale-stats/internal/platform/tracing"
)

const (
	DefaultBattleLimit = 25
	MaxBattleLimit     = 100
)

type QueryService struct {
	cardRepo   card.Repository
	playerRepo player.Repository
	battleRepo battle.Repository
	clanRepo   clan.Repository
}

func NewQueryService(
	cardRepo card.Repository,
	playerRepo player.Repository,
	battleRepo battle.Repository,
	clanRepo clan.Repository,
) *QueryService {
	return &QueryService{
		cardRepo:   cardRepo,
		playerRepo: playerRepo,
		battleRepo: battleRepo,
		clanRepo:   clanRepo,
	}
}

func (s *QueryService) ListCards(ctx context.Context) ([]card.Card, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListCards")
	defer span.End()

	cards, err := s.cardRepo.List(ctx)
	if err != nil {
		return nil, persistenceError("list cards", err)
	}
	return nonNil(cards), nil
}

func (s *QueryService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, persistenceError("list players", err)
	}
	return nonNil(players), nil
}

func (s *QueryService) GetPlayer(ctx context.Context, tag string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GetPlayer", tracing.TagKey.String(tag))
	defer span.End()

	return s.getPlayer(ctx, tag)
}

func (s *QueryService) GetDeck(ctx context.Context, tag string) ([]player.DeckCard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GetDeck", tracing.TagKey.String(tag))
	defer span.End()

	p, err := s.getPlayer(ctx, tag)
	if err != nil {
		return nil, err
	}
	deck, err := s.playerRepo.ListDeck(ctx, p.ID)
	if err != nil {
		return nil, persistenceError("list deck tag="+p.Tag, err)
	}
	return nonNil(deck), nil
}

func (s *QueryService) GetCollection(ctx context.Context, tag string) ([]player.CollectionCard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GetCollection", tracing.TagKey.String(tag))
	defer span.End()

	p, err := s.getPlayer(ctx, tag)
	if err != nil {
		return nil, err
	}
	collection, err := s.playerRepo.ListCollection(ctx, p.ID)
	if err != nil {
		return nil, persistenceError("list collection tag="+p.Tag, err)
	}
	return nonNil(collection), nil
}

// ListBattles returns the newest battles first. A zero limit means
// DefaultBattleLimit and limits above MaxBattleLimit are capped.
func (s *QueryService) ListBattles(ctx context.Context, tag string, limit int) ([]battle.Log, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListBattles", tracing.TagKey.String(tag))
	defer span.End()

	switch {
	case limit < 0:
		return nil, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	case limit == 0:
		limit = DefaultBattleLimit
	case limit > MaxBattleLimit:
		limit = MaxBattleLimit
	}

	p, err := s.getPlayer(ctx, tag)
	if err != nil {
		return nil, err
	}
	logs, err := s.battleRepo.ListByPlayer(ctx, p.ID, limit)
	if err != nil {
		return nil, persistenceError("list battles tag="+p.Tag, err)
	}
	return nonNil(logs), nil
}

func (s *QueryService) ListClans(ctx context.Context) ([]clan.Clan, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.ListClans")
	defer span.End()

	clans, err := s.clanRepo.List(ctx)
	if err != nil {
		return nil, persistenceError("list clans", err)
	}
	return nonNil(clans), nil
}

func (s *QueryService) GetClan(ctx context.Context, tag string) (clan.Clan, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.GetClan", tracing.TagKey.String(tag))
	defer span.End()

	tag, err := requireTag(tag)
	if err != nil {
		return clan.Clan{}, err
	}
	c, exists, err := s.clanRepo.GetByTag(ctx, tag)
	if err != nil {
		return clan.Clan{}, persistenceError("get clan tag="+tag, err)
	}
	if !exists {
		return clan.Clan{}, fmt.Errorf("%w: clan=%s", ErrNotFound, tag)
	}
	return c, nil
}

func (s *QueryService) getPlayer(ctx context.Context, rawTag string) (player.Player, error) {
	tag, err := requireTag(rawTag)
	if err != nil {
		return player.Player{}, err
	}
	p, exists, err := s.playerRepo.GetByTag(ctx, tag)
	if err != nil {
		return player.Player{}, persistenceError("get player tag="+tag, err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, tag)
	}
	return p, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
