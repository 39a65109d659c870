package views

import (
	"context"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/a-h/templ"
)

// PlayersPage lists the roster. name and errMsg echo a rejected registration.
func PlayersPage(site Site, players []league.Player, name, errMsg string) templ.Component {
	return Layout(site, "Players", playerList(players, name, errMsg))
}

func playerList(players []league.Player, name, errMsg string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		canEdit := IsOrganizer(ctx)

		h.raw(`<section id="players"><h1>Players</h1>`)
		if canEdit {
			h.raw(`<form method="post" action="/players" class="add-player">`)
			h.rawf(`<input type="text" name="name" placeholder="Player name" required value="%s">`, attr(name))
			h.raw(`<button type="submit">Add player</button></form>`)
			if errMsg != "" {
				h.raw(`<p class="error">`)
				h.text(errMsg)
				h.raw(`</p>`)
			}
		}

		if len(players) == 0 {
			h.raw(`<p class="empty">No players registered yet.</p></section>`)
			return
		}

		h.raw(`<ul class="roster">`)
		for _, p := range players {
			if p.Active {
				h.raw(`<li>`)
			} else {
				h.raw(`<li class="inactive">`)
			}
			h.rawf(`<a href="/players/%s">`, p.ID)
			h.text(p.Name)
			h.raw(`</a>`)
			if !p.Active {
				h.raw(` <span class="tag">inactive</span>`)
			}
			if canEdit {
				label := "Deactivate"
				if !p.Active {
					label = "Activate"
				}
				h.rawf(`<form method="post" action="/players/%s/toggle" class="inline"><button type="submit">%s</button></form>`, p.ID, label)
			}
			h.raw(`</li>`)
		}
		h.raw(`</ul></section>`)
	})
}
