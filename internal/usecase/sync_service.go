package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/royale-stats/internal/domain/battle"
	"github.com/riskibarqy/royale-stats/internal/domain/card"
	"github.com/riskibarqy/royale-stats/internal/domain/clan"
	"github.com/riskibarqy/royale-stats/internal/domain/player"
	"github.com/riskibarqy/royale-stats/internal/normalize"
	"github.com/riskibarqy/royale-stats/internal/platform/logging"
	"github.com/riskibarqy/royale-stats/internal/platform/resilience"
	"github.com/riskibarqy/royale-stats/internal/platform/tracing"
)

const (
	defaultRosterWorkers = 4

	SyncStatusOK      = "ok"
	SyncStatusFailed  = "failed"
	SyncStatusSkipped = "skipped"

	SyncStepPlayer     = "player"
	SyncStepDeck       = "deck"
	SyncStepCollection = "collection"
	SyncStepBattles    = "battlelogs"
	SyncStepClan       = "clan"

	noClanMessage = "player is not in a clan"

	cardsLockKey = "cards"
)

type SyncServiceConfig struct {
	RosterWorkers int
	Logger        *logging.Logger
}

type SyncCardsResult struct {
	Count int `json:"count"`
}

type SyncPlayerResult struct {
	PlayerID        int64   `json:"player_id"`
	Tag             string  `json:"tag"`
	Name            string  `json:"name"`
	ClanTag         *string `json:"clan_tag,omitempty"`
	DeckCount       int     `json:"deck_count"`
	CollectionCount int     `json:"collection_count"`
}

type SyncBattleLogsResult struct {
	Tag      string `json:"tag"`
	Inserted int    `json:"inserted"`
}

type SyncClanResult struct {
	Tag         string `json:"tag"`
	Name        string `json:"name"`
	MemberCount *int   `json:"member_count,omitempty"`
}

type SyncStepResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count"`
}

type SyncAllResult struct {
	Player SyncPlayerResult `json:"player"`
	Steps  []SyncStepResult `json:"steps"`
}

// Partial reports whether any sub-step failed.
func (r SyncAllResult) Partial() bool {
	for _, step := range r.Steps {
		if step.Status == SyncStatusFailed {
			return true
		}
	}
	return false
}

type SyncMemberFailure struct {
	Tag   string `json:"tag"`
	Error string `json:"error"`
}

type SyncClanMembersResult struct {
	Clan    SyncClanResult      `json:"clan"`
	Members int                 `json:"members"`
	Synced  int                 `json:"synced"`
	Failed  []SyncMemberFailure `json:"failed"`
}

func (r SyncClanMembersResult) Partial() bool {
	return len(r.Failed) > 0
}

// SyncService pulls payloads from the game API and writes them through the
// repositories. Writes for one tag never interleave.
type SyncService struct {
	api           RoyaleAPI
	cardRepo      card.Repository
	playerRepo    player.Repository
	battleRepo    battle.Repository
	clanRepo      clan.Repository
	locks         *resilience.KeyedMutex
	rosterWorkers int
	logger        *logging.Logger
}

func NewSyncService(
	api RoyaleAPI,
	cardRepo card.Repository,
	playerRepo player.Repository,
	battleRepo battle.Repository,
	clanRepo clan.Repository,
	cfg SyncServiceConfig,
) *SyncService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	workers := cfg.RosterWorkers
	if workers < 1 {
		workers = defaultRosterWorkers
	}

	return &SyncService{
		api:           api,
		cardRepo:      cardRepo,
		playerRepo:    playerRepo,
		battleRepo:    battleRepo,
		clanRepo:      clanRepo,
		locks:         resilience.NewKeyedMutex(),
		rosterWorkers: workers,
		logger:        logger,
	}
}

func (s *SyncService) SyncCards(ctx context.Context) (SyncCardsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncCards")
	defer span.End()

	raw, err := s.api.FetchCards(ctx)
	if err != nil {
		return SyncCardsResult{}, fmt.Errorf("fetch cards: %w", err)
	}
	cards, err := normalize.Cards(raw)
	if err != nil {
		return SyncCardsResult{}, fmt.Errorf("normalize cards: %w", err)
	}

	unlock := s.locks.Lock(cardsLockKey)
	defer unlock()

	if err := s.cardRepo.UpsertMany(ctx, cards); err != nil {
		return SyncCardsResult{}, persistenceError("upsert cards", err)
	}

	s.logger.InfoContext(ctx, "cards synced", "count", len(cards))
	return SyncCardsResult{Count: len(cards)}, nil
}

func (s *SyncService) SyncPlayer(ctx context.Context, tag string) (SyncPlayerResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncPlayer", tracing.TagKey.String(tag))
	defer span.End()

	tag, err := requireTag(tag)
	if err != nil {
		return SyncPlayerResult{}, err
	}

	unlock := s.locks.Lock(playerLockKey(tag))
	defer unlock()

	return s.syncPlayer(ctx, tag)
}

func (s *SyncService) SyncBattleLogs(ctx context.Context, tag string) (SyncBattleLogsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncBattleLogs", tracing.TagKey.String(tag))
	defer span.End()

	tag, err := requireTag(tag)
	if err != nil {
		return SyncBattleLogsResult{}, err
	}

	unlock := s.locks.Lock(playerLockKey(tag))
	defer unlock()

	return s.syncBattleLogs(ctx, tag)
}

func (s *SyncService) SyncClan(ctx context.Context, tag string) (SyncClanResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncClan", tracing.TagKey.String(tag))
	defer span.End()

	tag, err := requireTag(tag)
	if err != nil {
		return SyncClanResult{}, err
	}

	result, _, err := s.syncClan(ctx, tag)
	return result, err
}

// SyncAll refreshes the player with its deck and collection, then its battle
// log and clan. Only a player failure is returned as an error. The battle log
// and clan steps report their own status.
func (s *SyncService) SyncAll(ctx context.Context, tag string) (SyncAllResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncAll", tracing.TagKey.String(tag))
	defer span.End()

	tag, err := requireTag(tag)
	if err != nil {
		return SyncAllResult{}, err
	}

	unlock := s.locks.Lock(playerLockKey(tag))
	playerResult, err := s.syncPlayer(ctx, tag)
	if err != nil {
		unlock()
		return SyncAllResult{}, err
	}

	result := SyncAllResult{
		Player: playerResult,
		Steps: []SyncStepResult{
			{Name: SyncStepPlayer, Status: SyncStatusOK, Count: 1},
			{Name: SyncStepDeck, Status: SyncStatusOK, Count: playerResult.DeckCount},
			{Name: SyncStepCollection, Status: SyncStatusOK, Count: playerResult.CollectionCount},
		},
	}

	battles, err := s.syncBattleLogs(ctx, tag)
	unlock()
	if err != nil {
		s.logger.WarnContext(ctx, "battle log step failed", "tag", tag, "error", err)
		result.Steps = append(result.Steps, SyncStepResult{Name: SyncStepBattles, Status: SyncStatusFailed, Message: err.Error()})
	} else {
		result.Steps = append(result.Steps, SyncStepResult{Name: SyncStepBattles, Status: SyncStatusOK, Count: battles.Inserted})
	}

	if playerResult.ClanTag == nil {
		result.Steps = append(result.Steps, SyncStepResult{Name: SyncStepClan, Status: SyncStatusSkipped, Message: noClanMessage})
		return result, nil
	}

	clanResult, _, err := s.syncClan(ctx, *playerResult.ClanTag)
	if err != nil {
		s.logger.WarnContext(ctx, "clan step failed", "tag", tag, "clan_tag", *playerResult.ClanTag, "error", err)
		result.Steps = append(result.Steps, SyncStepResult{Name: SyncStepClan, Status: SyncStatusFailed, Message: err.Error()})
		return result, nil
	}

	count := 0
	if clanResult.MemberCount != nil {
		count = *clanResult.MemberCount
	}
	result.Steps = append(result.Steps, SyncStepResult{Name: SyncStepClan, Status: SyncStatusOK, Count: count})
	return result, nil
}

// SyncClanMembers syncs the clan and then every member profile on a bounded
// worker pool. Member failures are collected instead of aborting the run.
func (s *SyncService) SyncClanMembers(ctx context.Context, clanTag string) (SyncClanMembersResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncClanMembers", tracing.TagKey.String(clanTag))
	defer span.End()

	clanTag, err := requireTag(clanTag)
	if err != nil {
		return SyncClanMembersResult{}, err
	}

	clanResult, members, err := s.syncClan(ctx, clanTag)
	if err != nil {
		return SyncClanMembersResult{}, err
	}

	result := SyncClanMembersResult{
		Clan:    clanResult,
		Members: len(members),
		Failed:  []SyncMemberFailure{},
	}
	if len(members) == 0 {
		return result, nil
	}

	workers := s.rosterWorkers
	if workers > len(members) {
		workers = len(members)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return SyncClanMembersResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, memberTag := range members {
		memberTag := memberTag
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			_, err := s.SyncPlayer(ctx, memberTag)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, SyncMemberFailure{Tag: memberTag, Error: err.Error()})
				return
			}
			result.Synced++
		}); err != nil {
			wg.Done()
			mu.Lock()
			result.Failed = append(result.Failed, SyncMemberFailure{Tag: memberTag, Error: fmt.Sprintf("submit to worker pool: %v", err)})
			mu.Unlock()
		}
	}
	wg.Wait()

	sort.SliceStable(result.Failed, func(i, j int) bool { return result.Failed[i].Tag < result.Failed[j].Tag })
	s.logger.InfoContext(ctx, "clan roster synced",
		"clan_tag", clanTag,
		"members", result.Members,
		"synced", result.Synced,
		"failed", len(result.Failed),
	)
	return result, nil
}

func (s *SyncService) syncPlayer(ctx context.Context, tag string) (SyncPlayerResult, error) {
	raw, err := s.api.FetchPlayer(ctx, tag)
	if err != nil {
		return SyncPlayerResult{}, fmt.Errorf("fetch player tag=%s: %w", tag, err)
	}
	data, err := normalize.Object(raw)
	if err != nil {
		return SyncPlayerResult{}, fmt.Errorf("normalize player tag=%s: %w", tag, err)
	}
	profile, err := normalize.Player(data)
	if err != nil {
		return SyncPlayerResult{}, fmt.Errorf("normalize player tag=%s: %w", tag, err)
	}
	// Deck and collection are checked before anything is written; the row id
	// is stamped once the player upsert returns it.
	deck, err := normalize.DeckCards(data, 0)
	if err != nil {
		return SyncPlayerResult{}, fmt.Errorf("normalize deck tag=%s: %w", tag, err)
	}
	collection, err := normalize.CollectionCards(data, 0)
	if err != nil {
		return SyncPlayerResult{}, fmt.Errorf("normalize collection tag=%s: %w", tag, err)
	}

	playerID, err := s.playerRepo.Upsert(ctx, profile)
	if err != nil {
		return SyncPlayerResult{}, persistenceError("upsert player tag="+tag, err)
	}
	for i := range deck {
		deck[i].PlayerID = playerID
	}
	for i := range collection {
		collection[i].PlayerID = playerID
	}

	if stubs := normalize.ReferencedCards(deck, collection); len(stubs) > 0 {
		if err := s.insertCardStubs(ctx, stubs); err != nil {
			return SyncPlayerResult{}, persistenceError("insert card stubs", err)
		}
	}
	if err := s.playerRepo.ReplaceDeck(ctx, playerID, deck); err != nil {
		return SyncPlayerResult{}, persistenceError("replace deck tag="+tag, err)
	}
	if err := s.playerRepo.ReplaceCollection(ctx, playerID, collection); err != nil {
		return SyncPlayerResult{}, persistenceError("replace collection tag="+tag, err)
	}

	s.logger.InfoContext(ctx, "player synced",
		"tag", tag,
		"player_id", playerID,
		"deck", len(deck),
		"collection", len(collection),
	)
	return SyncPlayerResult{
		PlayerID:        playerID,
		Tag:             profile.Tag,
		Name:            profile.Name,
		ClanTag:         profile.ClanTag,
		DeckCount:       len(deck),
		CollectionCount: len(collection),
	}, nil
}

// insertCardStubs shares the catalog lock with SyncCards so both never race
// on the same missing id.
func (s *SyncService) insertCardStubs(ctx context.Context, stubs []card.Card) error {
	unlock := s.locks.Lock(cardsLockKey)
	defer unlock()

	return s.cardRepo.InsertMissing(ctx, stubs)
}

func (s *SyncService) syncBattleLogs(ctx context.Context, tag string) (SyncBattleLogsResult, error) {
	stored, exists, err := s.playerRepo.GetByTag(ctx, tag)
	if err != nil {
		return SyncBattleLogsResult{}, persistenceError("get player tag="+tag, err)
	}
	if !exists {
		return SyncBattleLogsResult{}, fmt.Errorf("%w: player=%s must be synced before its battle log", ErrNotFound, tag)
	}

	raw, err := s.api.FetchBattleLog(ctx, tag)
	if err != nil {
		return SyncBattleLogsResult{}, fmt.Errorf("fetch battle log tag=%s: %w", tag, err)
	}
	entries, err := normalize.List(raw)
	if err != nil {
		return SyncBattleLogsResult{}, fmt.Errorf("normalize battle log tag=%s: %w", tag, err)
	}
	logs, err := normalize.BattleLogs(entries, stored.ID, tag)
	if err != nil {
		return SyncBattleLogsResult{}, fmt.Errorf("normalize battle log tag=%s: %w", tag, err)
	}

	if err := s.battleRepo.InsertMany(ctx, logs); err != nil {
		return SyncBattleLogsResult{}, persistenceError("insert battle logs tag="+tag, err)
	}

	s.logger.InfoContext(ctx, "battle log synced", "tag", tag, "inserted", len(logs))
	return SyncBattleLogsResult{Tag: tag, Inserted: len(logs)}, nil
}

func (s *SyncService) syncClan(ctx context.Context, tag string) (SyncClanResult, []string, error) {
	raw, err := s.api.FetchClan(ctx, tag)
	if err != nil {
		return SyncClanResult{}, nil, fmt.Errorf("fetch clan tag=%s: %w", tag, err)
	}
	data, err := normalize.Object(raw)
	if err != nil {
		return SyncClanResult{}, nil, fmt.Errorf("normalize clan tag=%s: %w", tag, err)
	}
	profile, err := normalize.Clan(data)
	if err != nil {
		return SyncClanResult{}, nil, fmt.Errorf("normalize clan tag=%s: %w", tag, err)
	}
	members, err := normalize.ClanMemberTags(data)
	if err != nil {
		return SyncClanResult{}, nil, fmt.Errorf("normalize clan members tag=%s: %w", tag, err)
	}

	unlock := s.locks.Lock(clanLockKey(profile.Tag))
	err = s.clanRepo.Upsert(ctx, profile)
	unlock()
	if err != nil {
		return SyncClanResult{}, nil, persistenceError("upsert clan tag="+tag, err)
	}

	s.logger.InfoContext(ctx, "clan synced", "tag", profile.Tag, "members", len(members))
	return SyncClanResult{
		Tag:         profile.Tag,
		Name:        profile.Name,
		MemberCount: profile.MemberCount,
	}, members, nil
}

func requireTag(raw string) (string, error) {
	tag := player.NormalizeTag(raw)
	if tag == "" {
		return "", fmt.Errorf("%w: tag is required", ErrInvalidInput)
	}
	if !player.ValidTag(tag) {
		return "", fmt.Errorf("%w: tag=%q has invalid characters", ErrInvalidInput, raw)
	}
	return tag, nil
}

func playerLockKey(tag string) string {
	return "player:" + tag
}

func clanLockKey(tag string) string {
	return "clan:" + tag
}
