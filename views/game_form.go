package views

import (
	"context"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/a-h/templ"
	"github.com/google/uuid"
)

var podiumFields = [3]struct{ name, label string }{
	{"first", "1st place"},
	{"second", "2nd place"},
	{"third", "3rd place"},
}

// GameFormPage renders the results form. action is "/games" for a new game
// and "/games/{id}" when editing.
func GameFormPage(site Site, title, action string, form GameForm, players []league.Player, errMsg string) templ.Component {
	return Layout(site, title, gameForm(title, action, form, players, errMsg))
}

func gameForm(title, action string, form GameForm, players []league.Player, errMsg string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="game-form"><h1>`)
		h.text(title)
		h.raw(`</h1>`)
		if errMsg != "" {
			h.raw(`<p class="error">`)
			h.text(errMsg)
			h.raw(`</p>`)
		}

		h.rawf(`<form method="post" action="%s">`, attr(action))
		h.rawf(`<label>Date <input type="date" name="game_date" required value="%s"></label>`, attr(form.Date))
		h.raw(`<label>Notes <textarea name="notes">`)
		h.text(form.Notes)
		h.raw(`</textarea></label>`)

		h.raw(`<fieldset><legend>Who played</legend>`)
		for _, p := range players {
			h.rawf(`<label class="check"><input type="checkbox" name="players" value="%s"%s> `, p.ID, checked(form.Selected[p.ID]))
			h.text(p.Name)
			h.raw(`</label>`)
		}
		h.raw(`</fieldset>`)

		h.raw(`<fieldset><legend>Podium</legend>`)
		for i, f := range podiumFields {
			h.raw(`<label>`)
			h.text(f.label)
			h.rawf(` <select name="%s" required>`, f.name)
			playerOptions(h, players, form.Podium[i])
			h.raw(`</select></label>`)
		}
		h.raw(`</fieldset>`)

		h.raw(`<fieldset><legend>Bubble</legend><select name="bubble">`)
		playerOptions(h, players, form.Bubble)
		h.raw(`</select></fieldset>`)

		h.raw(`<fieldset><legend>Final table</legend>`)
		for _, p := range players {
			h.rawf(`<label class="check"><input type="checkbox" name="final_table" value="%s"%s> `, p.ID, checked(form.FinalTable[p.ID]))
			h.text(p.Name)
			h.raw(`</label>`)
		}
		h.raw(`</fieldset>`)

		h.raw(`<div id="preview" hx-post="/games/preview" hx-trigger="change from:closest form" hx-include="closest form"></div>`)
		h.raw(`<button type="submit">Save game</button></form></section>`)
	})
}

func playerOptions(h *htmlWriter, players []league.Player, selected uuid.UUID) {
	h.raw(`<option value="">None</option>`)
	for _, p := range players {
		sel := ""
		if p.ID == selected {
			sel = " selected"
		}
		h.rawf(`<option value="%s"%s>`, p.ID, sel)
		h.text(p.Name)
		h.raw(`</option>`)
	}
}

func checked(b bool) string {
	if b {
		return " checked"
	}
	return ""
}

// PointsPreviewList shows what the form would award if it were saved now.
func PointsPreviewList(rows []league.PointsPreview, players []league.Player) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		if len(rows) == 0 {
			return
		}
		names := make(map[uuid.UUID]string, len(players))
		for _, p := range players {
			names[p.ID] = p.Name
		}

		h.raw(`<h2>Points</h2><ul class="preview">`)
		for _, r := range rows {
			h.raw(`<li>`)
			if label := league.PositionLabel(r.Position); label != "" {
				h.text(label + " ")
			}
			h.text(names[r.PlayerID])
			h.raw(` <span class="points">`)
			h.text(PointsLabel(r.Points))
			h.raw(`</span>`)
			if r.IsBubble {
				h.raw(` <span class="tag bubble">bubble</span>`)
			}
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
	})
}
