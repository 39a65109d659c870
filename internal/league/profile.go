package league

import (
	"fmt"
	"math"
	"sort"
)

const RecentGamesLimit = 10

type ProfileStats struct {
	Player         Player         `json:"player"`
	TotalPoints    int            `json:"total_points"`
	Games          int            `json:"games"`
	Wins           int            `json:"wins"`
	Podiums        int            `json:"podiums"`
	Bubbles        int            `json:"bubbles"`
	AveragePoints  float64        `json:"average_points"`
	WinRate        int            `json:"win_rate"`
	Qualified      bool           `json:"qualified"`
	GamesToQualify int            `json:"games_to_qualify"`
	History        []PlayerResult `json:"history"`
}

// Recent returns the latest games for display, newest first
func (p ProfileStats) Recent() []PlayerResult {
	if len(p.History) <= RecentGamesLimit {
		return p.History
	}
	return p.History[:RecentGamesLimit]
}

// ComputePlayerProfile summarises one player's results. Every row belongs to a
// different game, so games is the row count.
func ComputePlayerProfile(player Player, results []PlayerResult) ProfileStats {
	stats := ProfileStats{Player: player, Games: len(results)}

	for _, r := range results {
		stats.TotalPoints += r.Points
		if r.HasPosition(1) {
			stats.Wins++
		}
		if r.IsPodium() {
			stats.Podiums++
		}
		if r.IsBubble {
			stats.Bubbles++
		}
	}

	if stats.Games > 0 {
		stats.AveragePoints = float64(stats.TotalPoints) / float64(stats.Games)
		stats.WinRate = int(math.Round(float64(stats.Wins) / float64(stats.Games) * 100))
	}
	stats.Qualified = IsQualified(stats.Games)
	stats.GamesToQualify = GamesToQualify(stats.Games)

	history := make([]PlayerResult, len(results))
	copy(history, results)
	sort.SliceStable(history, func(i, j int) bool {
		if !history[i].GameDate.Equal(history[j].GameDate) {
			return history[i].GameDate.After(history[j].GameDate)
		}
		return history[i].CreatedAt.After(history[j].CreatedAt)
	})
	stats.History = history

	return stats
}

func FormatAverage(avg float64) string {
	return fmt.Sprintf("%.1f", avg)
}
