package main

import (
	"context"
	"net/http"
	"sort"

	"github.com/AdamBeresnev/poker-league/internal/httputil"
	"github.com/AdamBeresnev/poker-league/internal/live"
	"github.com/AdamBeresnev/poker-league/internal/middleware"
	"github.com/AdamBeresnev/poker-league/internal/service"
	"github.com/AdamBeresnev/poker-league/views"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
)

type application struct {
	site           views.Site
	allowedOrigins []string
	sessions       *scs.SessionManager
	players        *service.PlayerService
	games          *service.GameService
	stats          *service.StatsService
	organizers     *service.OrganizerService
	hub            *live.Hub
}

func newRouter(app *application) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// Serve static files
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	// The session middleware buffers responses, which a websocket upgrade cannot go through
	r.Get("/ws", app.hub.ServeWS)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: app.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/leaderboard", app.apiLeaderboard)
		r.Get("/stats", app.apiStats)
		r.Get("/players/{id}", app.apiPlayer)
	})

	r.Group(func(r chi.Router) {
		r.Use(app.sessions.LoadAndSave)
		r.Use(middleware.LoadOrganizer(app.sessions, app.organizers))

		r.Get("/", app.leaderboardPage)
		r.Get("/history", app.historyPage)
		r.Get("/players", app.playersPage)
		r.Get("/players/{id}", app.profilePage)
		r.Get("/stats", app.statsPage)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireOrganizer(app.sessions, app.organizers))

			r.Get("/games/new", app.newGamePage)
			r.Post("/games", app.createGame)
			r.Post("/games/preview", app.previewGame)
			r.Get("/games/{id}/edit", app.editGamePage)
			r.Post("/games/{id}", app.updateGame)
			r.Post("/games/{id}/delete", app.deleteGame)
			r.Post("/players", app.createPlayer)
			r.Post("/players/{id}/toggle", app.togglePlayer)
		})

		app.authRoutes(r)
	})

	return r
}

func (app *application) authRoutes(r chi.Router) {
	r.Get("/auth/{provider}", func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))

		gothic.BeginAuthHandler(w, r)
	})

	r.Get("/auth/{provider}/callback", func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))

		gothUser, err := gothic.CompleteUserAuth(w, r)
		if err != nil {
			httputil.BadRequest(w, "Authentication failure", err)
			return
		}

		o, err := app.organizers.FindOrCreateByProvider(r.Context(), gothUser)
		if err != nil {
			httputil.InternalServerError(w, "Failed to find or create organizer", err)
			return
		}

		app.signIn(w, r, o.ID.String())
	})

	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		var providers []string
		for name := range goth.GetProviders() {
			providers = append(providers, name)
		}
		sort.Strings(providers)

		app.render(w, r, views.LoginPage(app.site, providers))
	})

	r.Post("/auth/guest", func(w http.ResponseWriter, r *http.Request) {
		o, err := app.organizers.EnsureGuest(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to login as guest", err)
			return
		}
		app.signIn(w, r, o.ID.String())
	})

	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		if err := app.sessions.Destroy(r.Context()); err != nil {
			httputil.InternalServerError(w, "Failed to log out", err)
			return
		}
		if r.Header.Get("HX-Request") != "" {
			w.Header().Set("HX-Redirect", "/")
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
	})
}

func (app *application) signIn(w http.ResponseWriter, r *http.Request, organizerID string) {
	// New token on privilege change
	if err := app.sessions.RenewToken(r.Context()); err != nil {
		httputil.InternalServerError(w, "Failed to start session", err)
		return
	}
	app.sessions.Put(r.Context(), middleware.SessionKey, organizerID)
	http.Redirect(w, r, "/", http.StatusFound)
}
