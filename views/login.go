package views

import (
	"context"

	"github.com/a-h/templ"
)

// LoginPage offers a button per configured OAuth provider plus guest sign-in.
func LoginPage(site Site, providers []string) templ.Component {
	return Layout(site, "Organizer login", component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="login"><h1>Organizer login</h1>`)
		h.raw(`<p>Sign in to record games and manage the roster.</p><div class="providers">`)
		for _, p := range providers {
			h.rawf(`<a class="button" href="/auth/%s">Continue with `, attr(p))
			h.text(p)
			h.raw(`</a>`)
		}
		h.raw(`</div><form method="post" action="/auth/guest"><button type="submit">Continue as guest</button></form></section>`)
	}))
}
