package views

import (
	"context"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/a-h/templ"
)

func ProfilePage(site Site, profile league.ProfileStats) templ.Component {
	return Layout(site, profile.Player.Name, playerProfile(profile))
}

func playerProfile(p league.ProfileStats) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="profile"><h1>`)
		h.text(p.Player.Name)
		if !p.Player.Active {
			h.raw(` <span class="tag">inactive</span>`)
		}
		h.raw(`</h1><dl class="stat-grid">`)
		statItem(h, "Points", itoa(p.TotalPoints))
		statItem(h, "Games", itoa(p.Games))
		statItem(h, "Wins", itoa(p.Wins))
		statItem(h, "Podiums", itoa(p.Podiums))
		statItem(h, "Bubbles", itoa(p.Bubbles))
		statItem(h, "Average", league.FormatAverage(p.AveragePoints))
		statItem(h, "Win rate", itoa(p.WinRate)+"%")
		statItem(h, "Final", QualificationLabel(p.Games))
		h.raw(`</dl><h2>Recent games</h2>`)

		recent := p.Recent()
		if len(recent) == 0 {
			h.raw(`<p class="empty">No games played yet.</p></section>`)
			return
		}

		h.raw(`<table><thead><tr><th>Date</th><th>Finish</th><th>Points</th><th></th></tr></thead><tbody>`)
		for _, r := range recent {
			h.rawf(`<tr><td><a href="/history#game-%s">`, r.GameID)
			h.text(FormatDate(r.GameDate))
			h.raw(`</a></td><td>`)
			h.text(league.PositionLabel(r.Position))
			h.rawf(`</td><td>%d</td><td>`, r.Points)
			if r.IsBubble {
				h.raw(`<span class="tag bubble">bubble</span>`)
			}
			if r.IsFinalTable {
				h.raw(`<span class="tag final-table">final table</span>`)
			}
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></section>`)
	})
}

func statItem(h *htmlWriter, label, value string) {
	h.raw(`<div><dt>`)
	h.text(label)
	h.raw(`</dt><dd>`)
	h.text(value)
	h.raw(`</dd></div>`)
}
