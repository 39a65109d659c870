package views

import (
	"context"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/a-h/templ"
)

func LeaderboardPage(site Site, board []league.PlayerSummary) templ.Component {
	return Layout(site, "Leaderboard", Leaderboard(board))
}

func Leaderboard(board []league.PlayerSummary) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="leaderboard"><h1>Leaderboard</h1>`)
		if len(board) == 0 {
			h.raw(`<p class="empty">No games recorded yet.</p></section>`)
			return
		}

		h.raw(`<table class="standings"><thead><tr><th>#</th><th>Player</th><th>Points</th><th>Games</th>`)
		h.raw(`<th>Wins</th><th>Podiums</th><th>Bubbles</th><th>Final tables</th><th>Final</th></tr></thead><tbody>`)
		for _, s := range board {
			h.raw(`<tr`)
			if !s.Active {
				h.raw(` class="inactive"`)
			}
			h.raw(`><td>`)
			if s.HasBadge() {
				h.rawf(`<span class="%s">%d</span>`, RankClass(s.Rank), s.Rank)
			} else {
				h.rawf(`%d`, s.Rank)
			}
			h.rawf(`</td><td><a href="/players/%s">`, s.PlayerID)
			h.text(s.Name)
			h.raw(`</a></td>`)
			h.rawf(`<td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td>`,
				s.Points, s.Games, s.Wins, s.Podiums, s.Bubbles, s.FinalTables)
			h.raw(`<td>`)
			h.text(QualificationLabel(s.Games))
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></section>`)
	})
}
