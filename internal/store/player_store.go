package store

import (
	"context"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PlayerStore struct {
	db *sqlx.DB
}

const (
	listPlayersQuery  = "SELECT * FROM players ORDER BY name ASC"
	getPlayerQuery    = "SELECT * FROM players WHERE id = ?"
	createPlayerQuery = `
		INSERT INTO players (id, name, active, created_at)
		VALUES (:id, :name, :active, :created_at)
	`
	setPlayerActiveQuery = "UPDATE players SET active = ? WHERE id = ?"
)

func NewPlayerStore(db *sqlx.DB) *PlayerStore {
	return &PlayerStore{db: db}
}

func (s *PlayerStore) ListPlayers(ctx context.Context) ([]league.Player, error) {
	var players []league.Player
	err := s.db.SelectContext(ctx, &players, listPlayersQuery)
	return players, err
}

func (s *PlayerStore) GetPlayer(ctx context.Context, id uuid.UUID) (*league.Player, error) {
	var player league.Player
	if err := s.db.GetContext(ctx, &player, s.db.Rebind(getPlayerQuery), id); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *PlayerStore) CreatePlayer(ctx context.Context, player *league.Player) error {
	_, err := s.db.NamedExecContext(ctx, createPlayerQuery, player)
	if isUniqueViolation(err) {
		return ErrPlayerNameTaken
	}
	return err
}

func (s *PlayerStore) SetPlayerActive(ctx context.Context, id uuid.UUID, active bool) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(setPlayerActiveQuery), active, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(res)
}
