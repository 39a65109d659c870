package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/AdamBeresnev/poker-league/internal/live"
	"github.com/AdamBeresnev/poker-league/internal/obslog"
	"github.com/AdamBeresnev/poker-league/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyName = errors.New("please enter a player name")

type PlayerService struct {
	players  *store.PlayerStore
	games    *store.GameStore
	cache    RosterCache
	notifier Notifier
}

// NewPlayerService wires the player store. cache may be nil, in which case
// every roster read goes to the database.
func NewPlayerService(players *store.PlayerStore, games *store.GameStore, cache RosterCache, notifier Notifier) *PlayerService {
	return &PlayerService{
		players:  players,
		games:    games,
		cache:    cache,
		notifier: notifierOrNop(notifier),
	}
}

// Roster returns every registered player ordered by name. A cache miss or
// forceRefresh reloads from the store and repopulates the cache.
func (s *PlayerService) Roster(ctx context.Context, forceRefresh bool) ([]league.Player, error) {
	if s.cache != nil && !forceRefresh {
		players, hit, err := s.cache.Get(ctx)
		if err != nil {
			obslog.L().Warn("roster cache read failed", zap.Error(err))
		} else if hit {
			return players, nil
		}
	}

	// Read before the store so a write committed meanwhile makes the refill a no-op
	var (
		generation int64
		refill     bool
	)
	if s.cache != nil {
		gen, err := s.cache.Generation(ctx)
		if err != nil {
			obslog.L().Warn("roster cache generation read failed", zap.Error(err))
		} else {
			generation, refill = gen, true
		}
	}

	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	if refill {
		stored, err := s.cache.Set(ctx, players, generation)
		if err != nil {
			obslog.L().Warn("roster cache write failed", zap.Error(err))
		} else if !stored {
			obslog.L().Debug("roster changed while loading, snapshot not cached")
		}
	}
	return players, nil
}

// ActivePlayers is the roster offered on the results form.
func (s *PlayerService) ActivePlayers(ctx context.Context) ([]league.Player, error) {
	players, err := s.Roster(ctx, false)
	if err != nil {
		return nil, err
	}
	active := make([]league.Player, 0, len(players))
	for _, p := range players {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *PlayerService) RegisterPlayer(ctx context.Context, name string) (*league.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	player := &league.Player{
		ID:        uuid.New(),
		Name:      name,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.players.CreatePlayer(ctx, player); err != nil {
		if errors.Is(err, store.ErrPlayerNameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to add player: %w", err)
	}

	s.rosterChanged(ctx, player.ID)
	return player, nil
}

// ToggleActive flips whether a player is offered for new games. Their results
// are untouched.
func (s *PlayerService) ToggleActive(ctx context.Context, id uuid.UUID) (*league.Player, error) {
	player, err := s.players.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	player.Active = !player.Active
	if err := s.players.SetPlayerActive(ctx, id, player.Active); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	s.rosterChanged(ctx, id)
	return player, nil
}

func (s *PlayerService) GetProfile(ctx context.Context, id uuid.UUID) (*league.ProfileStats, error) {
	player, err := s.players.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	results, err := s.games.ListResultsForPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load results for player %s: %w", id, err)
	}

	profile := league.ComputePlayerProfile(*player, results)
	return &profile, nil
}

func (s *PlayerService) rosterChanged(ctx context.Context, id uuid.UUID) {
	s.invalidate(ctx)
	s.notifier.Publish(live.Event{Type: live.PlayerSaved, ID: id.String()})
}

func (s *PlayerService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		obslog.L().Warn("roster cache invalidate failed", zap.Error(err))
	}
}
