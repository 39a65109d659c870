package league

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	// Buy-in credited to the end-of-year pool for every result row
	EntryFee = 50

	MinGamesForAverage = 3
	FormWindow         = 5
	MinFormGames       = 3

	UnknownPlayerName = "Unknown"
)

type PlayerRollup struct {
	PlayerID uuid.UUID `json:"player_id"`
	Name     string    `json:"name"`
	Points   int       `json:"points"`
	Games    int       `json:"games"`
	Wins     int       `json:"wins"`
	Bubbles  int       `json:"bubbles"`
	// Points of the most recent games, newest first
	RecentForm []int `json:"recent_form"`
}

func (r PlayerRollup) Average() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Points) / float64(r.Games)
}

func (r PlayerRollup) FormAverage() float64 {
	if len(r.RecentForm) == 0 {
		return 0
	}
	total := 0
	for _, p := range r.RecentForm {
		total += p
	}
	return float64(total) / float64(len(r.RecentForm))
}

type Achievement struct {
	PlayerID uuid.UUID `json:"player_id"`
	Name     string    `json:"name"`
	Value    float64   `json:"value"`
	// Only set for the hot streak, the size of the form window
	Games int `json:"games,omitempty"`
}

type LeagueStats struct {
	PrizePool     int            `json:"prize_pool"`
	TotalGames    int            `json:"total_games"`
	GamesThisYear int            `json:"games_this_year"`
	TotalPlayers  int            `json:"total_players"`
	NextGame      *time.Time     `json:"next_game,omitempty"`
	Rollups       []PlayerRollup `json:"rollups"`

	MostWins    *Achievement `json:"most_wins,omitempty"`
	MostBubbles *Achievement `json:"most_bubbles,omitempty"`
	BestAverage *Achievement `json:"best_average,omitempty"`
	HotStreak   *Achievement `json:"hot_streak,omitempty"`
}

func PrizePool(results []Result) int {
	return len(results) * EntryFee
}

func GamesInYear(games []Game, year int) int {
	count := 0
	for _, g := range games {
		if g.GameDate.Year() == year {
			count++
		}
	}
	return count
}

// ComputeLeagueStats builds the dashboard figures. Rollups are keyed by player
// id and listed in the order their first result appears; rows whose player is
// not on the roster are skipped. Achievement ties go to whichever player comes
// first in that order.
func ComputeLeagueStats(games []Game, results []Result, players []Player, now time.Time) LeagueStats {
	stats := LeagueStats{
		PrizePool:     PrizePool(results),
		TotalGames:    len(games),
		GamesThisYear: GamesInYear(games, now.Year()),
	}

	if next, ok := NextScheduledGameDate(now); ok {
		stats.NextGame = &next
	}

	stats.Rollups = rollupPlayers(games, results, players)
	stats.TotalPlayers = len(stats.Rollups)

	stats.MostWins = leader(stats.Rollups, func(r PlayerRollup) (float64, bool) {
		return float64(r.Wins), true
	})
	stats.MostBubbles = leader(stats.Rollups, func(r PlayerRollup) (float64, bool) {
		return float64(r.Bubbles), true
	})
	stats.BestAverage = leader(stats.Rollups, func(r PlayerRollup) (float64, bool) {
		return r.Average(), r.Games >= MinGamesForAverage
	})
	stats.HotStreak = leader(stats.Rollups, func(r PlayerRollup) (float64, bool) {
		return r.FormAverage(), len(r.RecentForm) >= MinFormGames
	})
	if stats.HotStreak != nil {
		for _, r := range stats.Rollups {
			if r.PlayerID == stats.HotStreak.PlayerID {
				stats.HotStreak.Games = len(r.RecentForm)
				break
			}
		}
	}

	return stats
}

func rollupPlayers(games []Game, results []Result, players []Player) []PlayerRollup {
	roster := rosterByID(players)

	index := make(map[uuid.UUID]int)
	seenGames := make(map[uuid.UUID]map[uuid.UUID]struct{})
	var rollups []PlayerRollup

	for _, r := range results {
		p, known := roster[r.PlayerID]
		if !known {
			continue
		}
		i, exists := index[r.PlayerID]
		if !exists {
			i = len(rollups)
			index[r.PlayerID] = i
			seenGames[r.PlayerID] = make(map[uuid.UUID]struct{})
			rollups = append(rollups, PlayerRollup{PlayerID: r.PlayerID, Name: p.Name})
		}

		s := &rollups[i]
		s.Points += r.Points
		if _, dup := seenGames[r.PlayerID][r.GameID]; !dup {
			seenGames[r.PlayerID][r.GameID] = struct{}{}
			s.Games++
		}
		if r.HasPosition(1) {
			s.Wins++
		}
		if r.IsBubble {
			s.Bubbles++
		}
	}

	gameDates := make(map[uuid.UUID]time.Time, len(games))
	for _, g := range games {
		gameDates[g.ID] = g.GameDate
	}

	sorted := make([]Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, okI := gameDates[sorted[i].GameID]
		dj, okJ := gameDates[sorted[j].GameID]
		if okI != okJ {
			// Results of unknown games go last
			return okI
		}
		return di.After(dj)
	})

	for _, r := range sorted {
		i, ok := index[r.PlayerID]
		if !ok {
			continue
		}
		s := &rollups[i]
		if len(s.RecentForm) < FormWindow {
			s.RecentForm = append(s.RecentForm, r.Points)
		}
	}

	return rollups
}

// leader scans in order and keeps the first strictly greater value above zero.
// metric reports false for players that are not eligible.
func leader(rollups []PlayerRollup, metric func(PlayerRollup) (float64, bool)) *Achievement {
	var best *Achievement
	for _, r := range rollups {
		val, eligible := metric(r)
		if !eligible {
			continue
		}
		current := 0.0
		if best != nil {
			current = best.Value
		}
		if val > current {
			best = &Achievement{PlayerID: r.PlayerID, Name: r.Name, Value: val}
		}
	}
	return best
}
