package views

import (
	"context"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/a-h/templ"
)

func HistoryPage(site Site, entries []HistoryEntry) templ.Component {
	return Layout(site, "History", historyList(entries))
}

func historyList(entries []HistoryEntry) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="history"><h1>Game history</h1>`)
		if len(entries) == 0 {
			h.raw(`<p class="empty">No games recorded yet.</p></section>`)
			return
		}

		canEdit := IsOrganizer(ctx)
		for _, e := range entries {
			h.rawf(`<article class="game" id="game-%s"><header><h2>`, e.Game.ID)
			h.text(FormatDate(e.Game.GameDate))
			h.rawf(`</h2><span class="players">%d players</span>`, e.PlayerCount())
			if canEdit {
				h.rawf(`<a href="/games/%s/edit">Edit</a>`, e.Game.ID)
				h.rawf(`<form method="post" action="/games/%s/delete" class="inline" hx-confirm="Delete this game and all of its results?">`, e.Game.ID)
				h.raw(`<button type="submit" class="danger">Delete</button></form>`)
			}
			h.raw(`</header>`)
			if e.Game.Notes != nil {
				h.raw(`<p class="notes">`)
				h.text(*e.Game.Notes)
				h.raw(`</p>`)
			}

			h.raw(`<ol class="podium">`)
			for _, row := range e.Podium {
				h.raw(`<li>`)
				resultRow(h, row)
				h.raw(`</li>`)
			}
			h.raw(`</ol>`)

			if len(e.Others) > 0 {
				h.raw(`<ul class="others">`)
				for _, row := range e.Others {
					h.raw(`<li>`)
					resultRow(h, row)
					h.raw(`</li>`)
				}
				h.raw(`</ul>`)
			}
			h.raw(`</article>`)
		}
		h.raw(`</section>`)
	})
}

func resultRow(h *htmlWriter, row ResultRow) {
	if label := league.PositionLabel(row.Position); label != "" {
		h.raw(`<span class="position">`)
		h.text(label)
		h.raw(`</span> `)
	}
	h.rawf(`<a href="/players/%s">`, row.PlayerID)
	h.text(row.PlayerName)
	h.raw(`</a> <span class="points">`)
	h.text(PointsLabel(row.Points))
	h.raw(`</span>`)
	if row.IsBubble {
		h.raw(` <span class="tag bubble">bubble</span>`)
	}
	if row.IsFinalTable {
		h.raw(` <span class="tag final-table">final table</span>`)
	}
}
