package store

import (
	"context"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type GameStore struct {
	db *sqlx.DB
}

func NewGameStore(db *sqlx.DB) *GameStore {
	return &GameStore{db: db}
}

func (s *GameStore) CreateGame(ctx context.Context, tx *sqlx.Tx, game *league.Game) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO games (id, game_date, notes, created_at)
		VALUES (:id, :game_date, :notes, :created_at)`, game)
	return err
}

func (s *GameStore) UpdateGame(ctx context.Context, tx *sqlx.Tx, game *league.Game) error {
	res, err := tx.NamedExecContext(ctx, `UPDATE games SET game_date = :game_date, notes = :notes WHERE id = :id`, game)
	if err != nil {
		return err
	}
	return checkAffectedRows(res)
}

// DeleteGame removes the game and its results. Results are deleted explicitly so
// the outcome does not depend on the connection having foreign keys enabled.
func (s *GameStore) DeleteGame(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	if err := s.DeleteResultsForGame(ctx, tx, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM games WHERE id = ?"), id)
	if err != nil {
		return err
	}
	return checkAffectedRows(res)
}

func (s *GameStore) CreateResults(ctx context.Context, tx *sqlx.Tx, results []league.Result) error {
	if len(results) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, `INSERT INTO results (id, game_id, player_id, position, points, is_bubble, is_final_table, created_at)
		VALUES (:id, :game_id, :player_id, :position, :points, :is_bubble, :is_final_table, :created_at)`, results)
	return err
}

func (s *GameStore) DeleteResultsForGame(ctx context.Context, tx *sqlx.Tx, gameID uuid.UUID) error {
	_, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM results WHERE game_id = ?"), gameID)
	return err
}

func (s *GameStore) GetGame(ctx context.Context, id uuid.UUID) (*league.Game, error) {
	var game league.Game
	if err := s.db.GetContext(ctx, &game, s.db.Rebind("SELECT * FROM games WHERE id = ?"), id); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *GameStore) ListGames(ctx context.Context) ([]league.Game, error) {
	var games []league.Game
	err := s.db.SelectContext(ctx, &games, "SELECT * FROM games ORDER BY game_date DESC, created_at DESC, id ASC")
	return games, err
}

// ListResults returns every result in insertion order. Rows of one game share
// created_at, so id breaks the tie.
func (s *GameStore) ListResults(ctx context.Context) ([]league.Result, error) {
	var results []league.Result
	err := s.db.SelectContext(ctx, &results, "SELECT * FROM results ORDER BY created_at ASC, id ASC")
	return results, err
}

func (s *GameStore) ListResultsForGame(ctx context.Context, gameID uuid.UUID) ([]league.Result, error) {
	var results []league.Result
	err := s.db.SelectContext(ctx, &results, s.db.Rebind("SELECT * FROM results WHERE game_id = ? ORDER BY created_at ASC, id ASC"), gameID)
	return results, err
}

func (s *GameStore) ListResultsForPlayer(ctx context.Context, playerID uuid.UUID) ([]league.PlayerResult, error) {
	var results []league.PlayerResult
	err := s.db.SelectContext(ctx, &results, s.db.Rebind(`
		SELECT r.*, g.game_date FROM results r
		JOIN games g ON g.id = r.game_id
		WHERE r.player_id = ?
		ORDER BY g.game_date DESC, r.created_at DESC, r.id ASC`), playerID)
	return results, err
}
