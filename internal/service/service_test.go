package service

import (
	"sync"
	"testing"

	"github.com/AdamBeresnev/poker-league/internal/live"
	"github.com/AdamBeresnev/poker-league/internal/store"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err, "Failed to connect to in-memory DB")
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	driver, err := sqlite3.WithInstance(database.DB, &sqlite3.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	m, err := migrate.NewWithDatabaseInstance("file://../../migrations/sqlite3", "sqlite3", driver)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to apply migrations")
	}

	return database
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []live.Event
}

func (n *recordingNotifier) Publish(e live.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func (n *recordingNotifier) Events() []live.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]live.Event(nil), n.events...)
}

type services struct {
	db       *sqlx.DB
	players  *PlayerService
	games    *GameService
	stats    *StatsService
	notifier *recordingNotifier
}

func newServices(t *testing.T, cache RosterCache) services {
	t.Helper()
	db := setupTestDB(t)
	notifier := &recordingNotifier{}

	gameStore := store.NewGameStore(db)
	players := NewPlayerService(store.NewPlayerStore(db), gameStore, cache, notifier)
	return services{
		db:       db,
		players:  players,
		games:    NewGameService(db, gameStore, players, notifier),
		stats:    NewStatsService(gameStore, players),
		notifier: notifier,
	}
}
