package league

import (
	"testing"

	"github.com/AdamBeresnev/poker-league/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayer(name string) Player {
	return Player{ID: uuid.New(), Name: name, Active: true}
}

func result(gameID uuid.UUID, p Player, pos *int) Result {
	return Result{ID: uuid.New(), GameID: gameID, PlayerID: p.ID, Position: pos, Points: PointsForPosition(pos)}
}

func TestComputeLeaderboard_SingleGame(t *testing.T) {
	a, b, c, d := newPlayer("A"), newPlayer("B"), newPlayer("C"), newPlayer("D")
	gameID := uuid.New()

	bubble := result(gameID, d, nil)
	bubble.IsBubble = true
	results := []Result{
		result(gameID, c, utils.Ptr(3)),
		bubble,
		result(gameID, a, utils.Ptr(1)),
		result(gameID, b, utils.Ptr(2)),
	}

	board := ComputeLeaderboard([]Player{a, b, c, d}, results)
	require.Len(t, board, 4)

	assert.Equal(t, []string{"A", "B", "C", "D"}, []string{board[0].Name, board[1].Name, board[2].Name, board[3].Name})
	assert.Equal(t, []int{10, 5, 3, 1}, []int{board[0].Points, board[1].Points, board[2].Points, board[3].Points})
	for i, s := range board {
		assert.Equal(t, i+1, s.Rank)
		assert.Equal(t, 1, s.Games)
		assert.False(t, s.Qualified)
	}
	assert.Equal(t, 1, board[0].Wins)
	assert.Equal(t, 1, board[2].Podiums)
	assert.Equal(t, 0, board[3].Podiums)
	assert.Equal(t, 1, board[3].Bubbles)
	assert.True(t, board[2].HasBadge())
	assert.False(t, board[3].HasBadge())
	assert.Equal(t, 200, PrizePool(results))
}

func TestComputeLeaderboard_TieBreaks(t *testing.T) {
	a, b, c := newPlayer("A"), newPlayer("B"), newPlayer("C")

	var results []Result
	// A: one win in a single game = 10 points, 1 win, 1 game
	results = append(results, result(uuid.New(), a, utils.Ptr(1)))
	// B: two seconds = 10 points, 0 wins, 2 games
	results = append(results, result(uuid.New(), b, utils.Ptr(2)), result(uuid.New(), b, utils.Ptr(2)))
	// C: ten attendances = 10 points, 0 wins, 10 games
	for i := 0; i < 10; i++ {
		results = append(results, result(uuid.New(), c, nil))
	}

	board := ComputeLeaderboard([]Player{c, b, a}, results)
	require.Len(t, board, 3)

	assert.Equal(t, "A", board[0].Name, "more wins wins the tie")
	assert.Equal(t, "B", board[1].Name, "fewer games breaks the remaining tie")
	assert.Equal(t, "C", board[2].Name)
	assert.True(t, board[2].Qualified)
}

func TestComputeLeaderboard_EqualKeysKeepInputOrder(t *testing.T) {
	a, b := newPlayer("A"), newPlayer("B")
	g := uuid.New()

	board := ComputeLeaderboard([]Player{a, b}, []Result{result(g, b, nil), result(g, a, nil)})
	require.Len(t, board, 2)
	assert.Equal(t, "B", board[0].Name)
	assert.Equal(t, "A", board[1].Name)

	board = ComputeLeaderboard([]Player{a, b}, []Result{result(g, a, nil), result(g, b, nil)})
	assert.Equal(t, "A", board[0].Name)
}

func TestComputeLeaderboard_DistinctGames(t *testing.T) {
	a := newPlayer("A")
	g1, g2 := uuid.New(), uuid.New()

	results := []Result{result(g1, a, nil), result(g1, a, utils.Ptr(1)), result(g2, a, nil)}
	board := ComputeLeaderboard([]Player{a}, results)

	require.Len(t, board, 1)
	assert.Equal(t, 2, board[0].Games)
	assert.Equal(t, 12, board[0].Points)
}

func TestComputeLeaderboard_DropsOrphans(t *testing.T) {
	a := newPlayer("A")
	ghost := newPlayer("Ghost")
	g := uuid.New()

	board := ComputeLeaderboard([]Player{a}, []Result{result(g, ghost, utils.Ptr(1)), result(g, a, nil)})
	require.Len(t, board, 1)
	assert.Equal(t, a.ID, board[0].PlayerID)
	assert.Equal(t, 1, board[0].Rank)
}

func TestComputeLeaderboard_CarriesActiveAndFinalTables(t *testing.T) {
	a := newPlayer("A")
	a.Active = false
	ft := result(uuid.New(), a, nil)
	ft.IsFinalTable = true

	board := ComputeLeaderboard([]Player{a}, []Result{ft, result(uuid.New(), a, nil)})
	require.Len(t, board, 1)
	assert.False(t, board[0].Active)
	assert.Equal(t, 1, board[0].FinalTables)
}

func TestQualificationBoundary(t *testing.T) {
	a := newPlayer("A")
	var results []Result
	for i := 0; i < 9; i++ {
		results = append(results, result(uuid.New(), a, nil))
	}

	board := ComputeLeaderboard([]Player{a}, results)
	assert.Equal(t, 9, board[0].Games)
	assert.False(t, board[0].Qualified)
	assert.Equal(t, 1, GamesToQualify(9))

	results = append(results, result(uuid.New(), a, nil))
	board = ComputeLeaderboard([]Player{a}, results)
	assert.Equal(t, 10, board[0].Games)
	assert.True(t, board[0].Qualified)
	assert.Equal(t, 0, GamesToQualify(10))
}

func TestComputeLeaderboard_Empty(t *testing.T) {
	assert.Empty(t, ComputeLeaderboard(nil, nil))
}
