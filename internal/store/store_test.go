package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/AdamBeresnev/poker-league/internal/organizer"
	"github.com/AdamBeresnev/poker-league/internal/utils"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err, "Failed to connect to in-memory DB")
	// Every connection to :memory: is its own database
	database.SetMaxOpenConns(1)

	driver, err := sqlite3.WithInstance(database.DB, &sqlite3.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations/sqlite3",
		"sqlite3",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to apply migrations")
	}

	return database
}

func createPlayers(t *testing.T, s *PlayerStore, names ...string) []league.Player {
	t.Helper()
	var players []league.Player
	for _, name := range names {
		p := league.Player{ID: uuid.New(), Name: name, Active: true, CreatedAt: time.Now().UTC()}
		require.NoError(t, s.CreatePlayer(context.Background(), &p))
		players = append(players, p)
	}
	return players
}

func createGame(t *testing.T, db *sqlx.DB, s *GameStore, date string, results ...league.Result) league.Game {
	t.Helper()
	ctx := context.Background()
	d, err := league.ParseDate(date)
	require.NoError(t, err)

	game := league.Game{ID: uuid.New(), GameDate: d, Notes: utils.StringOrNil("notes"), CreatedAt: time.Now().UTC()}
	for i := range results {
		results[i].GameID = game.ID
		results[i].CreatedAt = time.Now().UTC()
	}

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, s.CreateGame(ctx, tx, &game))
	require.NoError(t, s.CreateResults(ctx, tx, results))
	require.NoError(t, tx.Commit())
	return game
}

func newResult(p league.Player, pos *int) league.Result {
	return league.Result{ID: uuid.New(), PlayerID: p.ID, Position: pos, Points: league.PointsForPosition(pos)}
}

func TestCreatePlayer(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s := NewPlayerStore(db)
	ctx := context.Background()

	players := createPlayers(t, s, "Zoe", "Adam")

	fetched, err := s.GetPlayer(ctx, players[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Zoe", fetched.Name)
	assert.True(t, fetched.Active)

	all, err := s.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Adam", all[0].Name)

	dup := league.Player{ID: uuid.New(), Name: "Adam", Active: true, CreatedAt: time.Now().UTC()}
	err = s.CreatePlayer(ctx, &dup)
	assert.ErrorIs(t, err, ErrPlayerNameTaken)

	_, err = s.GetPlayer(ctx, uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSetPlayerActive(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s := NewPlayerStore(db)
	ctx := context.Background()
	p := createPlayers(t, s, "Kim")[0]

	require.NoError(t, s.SetPlayerActive(ctx, p.ID, false))
	fetched, err := s.GetPlayer(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Active)

	assert.ErrorIs(t, s.SetPlayerActive(ctx, uuid.New(), true), sql.ErrNoRows)
}

func TestCreateGameWithResults(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	players := NewPlayerStore(db)
	games := NewGameStore(db)
	ctx := context.Background()

	ps := createPlayers(t, players, "A", "B", "C")
	bubble := newResult(ps[2], nil)
	bubble.IsBubble = true
	game := createGame(t, db, games, "2025-06-12", newResult(ps[0], utils.Ptr(1)), newResult(ps[1], utils.Ptr(2)), bubble)

	fetched, err := games.GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-12", fetched.GameDate.Format(league.DateLayout))
	require.NotNil(t, fetched.Notes)
	assert.Equal(t, "notes", *fetched.Notes)

	results, err := games.ListResultsForGame(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, results, 3)

	byPlayer := map[uuid.UUID]league.Result{}
	for _, r := range results {
		byPlayer[r.PlayerID] = r
	}
	assert.Equal(t, 10, byPlayer[ps[0].ID].Points)
	assert.Equal(t, 1, *byPlayer[ps[0].ID].Position)
	assert.Nil(t, byPlayer[ps[2].ID].Position)
	assert.True(t, byPlayer[ps[2].ID].IsBubble)
	assert.False(t, byPlayer[ps[2].ID].IsFinalTable)
}

func TestResultsRejectUnknownPlayer(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	games := NewGameStore(db)
	ctx := context.Background()

	game := league.Game{ID: uuid.New(), GameDate: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC), CreatedAt: time.Now().UTC()}
	ghost := league.Result{ID: uuid.New(), GameID: game.ID, PlayerID: uuid.New(), Points: 1, CreatedAt: time.Now().UTC()}

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, games.CreateGame(ctx, tx, &game))
	assert.Error(t, games.CreateResults(ctx, tx, []league.Result{ghost}))
	require.NoError(t, tx.Rollback())

	_, err = games.GetGame(ctx, game.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows, "rolled back game must not exist")
}

func TestUpdateAndDeleteGame(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	players := NewPlayerStore(db)
	games := NewGameStore(db)
	ctx := context.Background()

	ps := createPlayers(t, players, "A", "B", "C")
	game := createGame(t, db, games, "2025-06-12", newResult(ps[0], utils.Ptr(1)), newResult(ps[1], utils.Ptr(2)), newResult(ps[2], utils.Ptr(3)))

	game.GameDate = time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	game.Notes = nil
	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, games.UpdateGame(ctx, tx, &game))
	require.NoError(t, tx.Commit())

	fetched, err := games.GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-10", fetched.GameDate.Format(league.DateLayout))
	assert.Nil(t, fetched.Notes)

	tx, err = db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, games.DeleteGame(ctx, tx, game.ID))
	require.NoError(t, tx.Commit())

	results, err := games.ListResults(ctx)
	require.NoError(t, err)
	assert.Empty(t, results)

	tx, err = db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, games.DeleteGame(ctx, tx, game.ID), sql.ErrNoRows)
	require.NoError(t, tx.Rollback())
}

func TestListGamesAndPlayerResults(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	players := NewPlayerStore(db)
	games := NewGameStore(db)
	ctx := context.Background()

	ps := createPlayers(t, players, "A", "B", "C")
	older := createGame(t, db, games, "2025-01-09", newResult(ps[0], utils.Ptr(1)), newResult(ps[1], utils.Ptr(2)), newResult(ps[2], utils.Ptr(3)))
	newer := createGame(t, db, games, "2025-02-13", newResult(ps[0], nil), newResult(ps[1], utils.Ptr(1)), newResult(ps[2], utils.Ptr(2)))

	list, err := games.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	all, err := games.ListResults(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	mine, err := games.ListResultsForPlayer(ctx, ps[0].ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newer.ID, mine[0].GameID)
	assert.Equal(t, "2025-02-13", mine[0].GameDate.Format(league.DateLayout))
	assert.Equal(t, 1, mine[0].Points)
	assert.Equal(t, 10, mine[1].Points)
}

func TestListResultsBreaksCreatedAtTiesByID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	players := NewPlayerStore(db)
	games := NewGameStore(db)
	ctx := context.Background()

	ps := createPlayers(t, players, "A", "B", "C")
	stamp := time.Date(2025, 3, 6, 20, 0, 0, 0, time.UTC)
	d, err := league.ParseDate("2025-03-06")
	require.NoError(t, err)
	game := league.Game{ID: uuid.New(), GameDate: d, CreatedAt: stamp}

	ids := []uuid.UUID{
		uuid.MustParse("cccccccc-0000-4000-8000-000000000000"),
		uuid.MustParse("aaaaaaaa-0000-4000-8000-000000000000"),
		uuid.MustParse("bbbbbbbb-0000-4000-8000-000000000000"),
	}
	var results []league.Result
	for i, id := range ids {
		r := newResult(ps[i], utils.Ptr(i+1))
		r.ID = id
		r.GameID = game.ID
		r.CreatedAt = stamp
		results = append(results, r)
	}

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, games.CreateGame(ctx, tx, &game))
	require.NoError(t, games.CreateResults(ctx, tx, results))
	require.NoError(t, tx.Commit())

	want := []uuid.UUID{ids[1], ids[2], ids[0]}

	all, err := games.ListResults(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, r := range all {
		assert.Equal(t, want[i], r.ID)
	}

	forGame, err := games.ListResultsForGame(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, forGame, 3)
	for i, r := range forGame {
		assert.Equal(t, want[i], r.ID)
	}
}

func TestOrganizerStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s := NewOrganizerStore(db)
	ctx := context.Background()

	o := &organizer.Organizer{
		ID:         uuid.New(),
		Email:      "dealer@example.com",
		Username:   "dealer",
		Provider:   utils.Ptr("discord"),
		ProviderID: utils.Ptr("42"),
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, s.CreateOrganizer(ctx, o))

	fetched, err := s.GetOrganizerByProvider(ctx, "discord", "42")
	require.NoError(t, err)
	assert.Equal(t, o.ID, fetched.ID)

	o.Username = "pit boss"
	o.AvatarURL = utils.Ptr("https://cdn.example/a.png")
	require.NoError(t, s.UpdateOrganizerProfile(ctx, o))

	fetched, err = s.GetOrganizer(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "pit boss", fetched.Username)
	assert.Equal(t, "https://cdn.example/a.png", *fetched.AvatarURL)
}
