package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/AdamBeresnev/poker-league/internal/live"
	"github.com/AdamBeresnev/poker-league/internal/obslog"
	"github.com/AdamBeresnev/poker-league/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type GameService struct {
	db       *sqlx.DB
	store    *store.GameStore
	players  *PlayerService
	notifier Notifier
}

func NewGameService(db *sqlx.DB, store *store.GameStore, players *PlayerService, notifier Notifier) *GameService {
	return &GameService{db: db, store: store, players: players, notifier: notifierOrNop(notifier)}
}

// GameData is a single game with its result rows, used to prefill the edit form.
type GameData struct {
	Game    *league.Game
	Results []league.Result
}

// HistoryData is everything the history page needs to lay out past games.
type HistoryData struct {
	Games   []league.Game
	Results []league.Result
	Players []league.Player
}

// SubmitGame validates the submission and writes the game together with its
// results. Either everything is stored or nothing is.
func (s *GameService) SubmitGame(ctx context.Context, sub league.GameSubmission) (*league.Game, error) {
	if err := league.ValidateSubmission(sub); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	game := &league.Game{
		ID:        uuid.New(),
		GameDate:  league.DateOnly(sub.GameDate),
		Notes:     sub.NotesOrNil(),
		CreatedAt: now,
	}
	results := stamp(league.BuildResults(game.ID, sub), now)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.store.CreateGame(ctx, tx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	if err := s.store.CreateResults(ctx, tx, results); err != nil {
		obslog.L().Error("saving results failed, game discarded", zap.String("game_id", game.ID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to save results: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit game: %w", err)
	}

	obslog.L().Info("game recorded",
		zap.String("game_id", game.ID.String()),
		zap.String("date", game.GameDate.Format(league.DateLayout)),
		zap.Int("players", len(results)))
	s.gameChanged(ctx, live.GameSaved, game.ID)
	return game, nil
}

// UpdateGame replaces the date, notes and every result of an existing game.
// Concurrent edits are last write wins.
func (s *GameService) UpdateGame(ctx context.Context, id uuid.UUID, sub league.GameSubmission) error {
	if err := league.ValidateSubmission(sub); err != nil {
		return err
	}

	game := &league.Game{
		ID:       id,
		GameDate: league.DateOnly(sub.GameDate),
		Notes:    sub.NotesOrNil(),
	}
	results := stamp(league.BuildResults(id, sub), time.Now().UTC())

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.store.UpdateGame(ctx, tx, game); err != nil {
		return fmt.Errorf("failed to update game %s: %w", id, err)
	}
	if err := s.store.DeleteResultsForGame(ctx, tx, id); err != nil {
		return fmt.Errorf("failed to clear results: %w", err)
	}
	if err := s.store.CreateResults(ctx, tx, results); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game: %w", err)
	}

	s.gameChanged(ctx, live.GameSaved, id)
	return nil
}

func (s *GameService) DeleteGame(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.store.DeleteGame(ctx, tx, id); err != nil {
		return fmt.Errorf("failed to delete game %s: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	obslog.L().Info("game deleted", zap.String("game_id", id.String()))
	s.gameChanged(ctx, live.GameDeleted, id)
	return nil
}

func (s *GameService) GetGameForEdit(ctx context.Context, id uuid.UUID) (*GameData, error) {
	game, err := s.store.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	results, err := s.store.ListResultsForGame(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load results for game %s: %w", id, err)
	}
	return &GameData{Game: game, Results: results}, nil
}

func (s *GameService) History(ctx context.Context) (*HistoryData, error) {
	games, err := s.store.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	results, err := s.store.ListResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}
	players, err := s.players.Roster(ctx, false)
	if err != nil {
		return nil, err
	}
	return &HistoryData{Games: games, Results: results, Players: players}, nil
}

func (s *GameService) gameChanged(ctx context.Context, kind live.EventType, id uuid.UUID) {
	// Player totals shown next to the roster depend on results.
	s.players.invalidate(ctx)
	s.notifier.Publish(live.Event{Type: kind, ID: id.String()})
}

func stamp(results []league.Result, at time.Time) []league.Result {
	for i := range results {
		results[i].CreatedAt = at
	}
	return results
}
