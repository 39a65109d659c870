package views

import (
	"context"
	"fmt"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/a-h/templ"
)

func StatsPage(site Site, stats league.LeagueStats) templ.Component {
	return Layout(site, "Stats", leagueStats(site, stats))
}

func leagueStats(site Site, s league.LeagueStats) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="stats"><h1>League stats</h1><dl class="stat-grid">`)
		statItem(h, "Prize pool", FormatMoney(site.Currency, s.PrizePool))
		statItem(h, "Games played", itoa(s.TotalGames))
		statItem(h, "Games this year", itoa(s.GamesThisYear))
		statItem(h, "Players", itoa(s.TotalPlayers))
		next := "To be announced"
		if s.NextGame != nil {
			next = FormatDate(*s.NextGame)
		}
		statItem(h, "Next game", next)
		h.raw(`</dl><h2>Achievements</h2><div class="achievements">`)
		achievement(h, "Most wins", s.MostWins, func(a league.Achievement) string {
			return fmt.Sprintf("%.0f wins", a.Value)
		})
		achievement(h, "Bubble magnet", s.MostBubbles, func(a league.Achievement) string {
			return fmt.Sprintf("%.0f bubbles", a.Value)
		})
		achievement(h, "Best average", s.BestAverage, func(a league.Achievement) string {
			return league.FormatAverage(a.Value) + " pts/game"
		})
		achievement(h, "Hot streak", s.HotStreak, func(a league.Achievement) string {
			return fmt.Sprintf("%s pts/game over the last %d", league.FormatAverage(a.Value), a.Games)
		})
		h.raw(`</div>`)

		if len(s.Rollups) > 0 {
			h.raw(`<h2>Form</h2><table><thead><tr><th>Player</th><th>Points</th><th>Games</th><th>Average</th><th>Last games</th></tr></thead><tbody>`)
			for _, r := range s.Rollups {
				h.rawf(`<tr><td><a href="/players/%s">`, r.PlayerID)
				h.text(r.Name)
				h.rawf(`</a></td><td>%d</td><td>%d</td><td>`, r.Points, r.Games)
				h.text(league.FormatAverage(r.Average()))
				h.raw(`</td><td class="form">`)
				for _, pts := range r.RecentForm {
					h.rawf(`<span class="form-%d">%d</span>`, pts, pts)
				}
				h.raw(`</td></tr>`)
			}
			h.raw(`</tbody></table>`)
		}
		h.raw(`</section>`)
	})
}

func achievement(h *htmlWriter, title string, a *league.Achievement, detail func(league.Achievement) string) {
	h.raw(`<div class="achievement"><h3>`)
	h.text(title)
	h.raw(`</h3>`)
	if a == nil {
		h.raw(`<p class="empty">Nobody yet</p></div>`)
		return
	}
	h.rawf(`<p><a href="/players/%s">`, a.PlayerID)
	h.text(a.Name)
	h.raw(`</a></p><p class="detail">`)
	h.text(detail(*a))
	h.raw(`</p></div>`)
}
