package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/AdamBeresnev/poker-league/internal/store"
	"golang.org/x/sync/errgroup"
)

type StatsService struct {
	games   *store.GameStore
	players *PlayerService
	now     func() time.Time
}

func NewStatsService(games *store.GameStore, players *PlayerService) *StatsService {
	return &StatsService{games: games, players: players, now: time.Now}
}

// Leaderboard ranks every player with at least one result. The roster is
// always reloaded so a rename or toggle shows up immediately.
func (s *StatsService) Leaderboard(ctx context.Context) ([]league.PlayerSummary, error) {
	var (
		results []league.Result
		players []league.Player
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		results, err = s.games.ListResults(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load results: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		players, err = s.players.Roster(gCtx, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return league.ComputeLeaderboard(players, results), nil
}

func (s *StatsService) LeagueStats(ctx context.Context) (*league.LeagueStats, error) {
	var (
		games   []league.Game
		results []league.Result
		players []league.Player
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		games, err = s.games.ListGames(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load games: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		results, err = s.games.ListResults(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load results: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		players, err = s.players.Roster(gCtx, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := league.ComputeLeagueStats(games, results, players, s.now())
	return &stats, nil
}
