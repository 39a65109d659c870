package views

import (
	"context"

	"github.com/a-h/templ"
)

func Layout(site Site, title string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title + " · " + site.Name)
		h.raw(`</title>`)
		h.raw(`<link rel="stylesheet" href="/static/style.css">`)
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		h.raw(`</head><body hx-boost="true"><header class="nav"><a class="brand" href="/">`)
		h.text(site.Name)
		h.raw(`</a><nav><a href="/">Leaderboard</a><a href="/history">History</a>`)
		h.raw(`<a href="/players">Players</a><a href="/stats">Stats</a>`)

		if o := GetOrganizer(ctx); o != nil {
			h.raw(`<a class="button" href="/games/new">Record game</a>`)
			h.raw(`<span class="organizer">`)
			h.text(o.Username)
			h.raw(`</span><form method="post" action="/logout" class="inline"><button type="submit">Log out</button></form>`)
		} else {
			h.raw(`<a href="/login">Organizer login</a>`)
		}

		h.raw(`</nav></header><main>`)
		h.component(ctx, body)
		h.raw(`</main><script src="/static/live.js"></script></body></html>`)
	})
}
