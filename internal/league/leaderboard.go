package league

import (
	"sort"

	"github.com/google/uuid"
)

// Players need this many distinct games to play in the end-of-year final
const QualificationGames = 10

type PlayerSummary struct {
	PlayerID    uuid.UUID `json:"player_id"`
	Name        string    `json:"name"`
	Active      bool      `json:"active"`
	Rank        int       `json:"rank"`
	Points      int       `json:"points"`
	Games       int       `json:"games"`
	Wins        int       `json:"wins"`
	Podiums     int       `json:"podiums"`
	Bubbles     int       `json:"bubbles"`
	FinalTables int       `json:"final_tables"`
	Qualified   bool      `json:"qualified"`
}

// Rank badges are only handed out to the top three
func (s PlayerSummary) HasBadge() bool {
	return s.Rank >= 1 && s.Rank <= 3
}

func IsQualified(games int) bool {
	return games >= QualificationGames
}

func GamesToQualify(games int) int {
	if games >= QualificationGames {
		return 0
	}
	return QualificationGames - games
}

// ComputeLeaderboard aggregates every result row per player and orders the
// standings by points, then wins, then fewer games played. Rows whose player is
// missing from the roster are skipped.
func ComputeLeaderboard(players []Player, results []Result) []PlayerSummary {
	roster := rosterByID(players)

	index := make(map[uuid.UUID]int)
	seenGames := make(map[uuid.UUID]map[uuid.UUID]struct{})
	var board []PlayerSummary

	for _, r := range results {
		p, ok := roster[r.PlayerID]
		if !ok {
			continue
		}

		i, exists := index[r.PlayerID]
		if !exists {
			i = len(board)
			index[r.PlayerID] = i
			seenGames[r.PlayerID] = make(map[uuid.UUID]struct{})
			board = append(board, PlayerSummary{PlayerID: p.ID, Name: p.Name, Active: p.Active})
		}

		s := &board[i]
		s.Points += r.Points
		if _, dup := seenGames[r.PlayerID][r.GameID]; !dup {
			seenGames[r.PlayerID][r.GameID] = struct{}{}
			s.Games++
		}
		if r.HasPosition(1) {
			s.Wins++
		}
		if r.IsPodium() {
			s.Podiums++
		}
		if r.IsBubble {
			s.Bubbles++
		}
		if r.IsFinalTable {
			s.FinalTables++
		}
	}

	sort.SliceStable(board, func(i, j int) bool {
		return rankedBefore(board[i], board[j])
	})

	for i := range board {
		board[i].Rank = i + 1
		board[i].Qualified = IsQualified(board[i].Games)
	}

	return board
}

func rankedBefore(a, b PlayerSummary) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	// Fewer games for the same haul ranks higher
	return a.Games < b.Games
}
