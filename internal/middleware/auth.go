package middleware

import (
	"context"
	"net/http"
	"os"

	"github.com/AdamBeresnev/poker-league/internal/obslog"
	"github.com/AdamBeresnev/poker-league/internal/organizer"
	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/discord"
	"github.com/markbates/goth/providers/google"
	"go.uber.org/zap"
)

// SessionKey is where the signed-in organizer's id is kept in the session.
const SessionKey = "organizerID"

// OrganizerLookup resolves the organizer behind a session.
type OrganizerLookup interface {
	GetOrganizer(ctx context.Context, id uuid.UUID) (*organizer.Organizer, error)
}

// InitAuth registers the OAuth providers that have credentials configured.
func InitAuth() {
	var providers []goth.Provider

	if key := os.Getenv("DISCORD_KEY"); key != "" {
		providers = append(providers, discord.New(key, os.Getenv("DISCORD_SECRET"), os.Getenv("DISCORD_CALLBACK_URL"),
			discord.ScopeIdentify, discord.ScopeEmail))
	}
	if key := os.Getenv("GOOGLE_KEY"); key != "" {
		providers = append(providers, google.New(key, os.Getenv("GOOGLE_SECRET"), os.Getenv("GOOGLE_CALLBACK_URL"),
			"email", "profile"))
	}

	if len(providers) == 0 {
		obslog.L().Info("no OAuth providers configured, only guest sign-in is available")
		return
	}
	goth.UseProviders(providers...)
}

// LoadOrganizer puts the signed-in organizer, if any, into the request context.
// Pages use it to decide whether to show edit controls.
func LoadOrganizer(sessionManager *scs.SessionManager, lookup OrganizerLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if o := sessionOrganizer(r, sessionManager, lookup); o != nil {
				r = r.WithContext(context.WithValue(r.Context(), organizer.OrganizerKey, o))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireOrganizer sends anonymous visitors to the login page.
func RequireOrganizer(sessionManager *scs.SessionManager, lookup OrganizerLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			o := GetOrganizer(r.Context())
			if o == nil {
				o = sessionOrganizer(r, sessionManager, lookup)
			}
			if o == nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), organizer.OrganizerKey, o)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionOrganizer(r *http.Request, sessionManager *scs.SessionManager, lookup OrganizerLookup) *organizer.Organizer {
	idStr := sessionManager.GetString(r.Context(), SessionKey)
	if idStr == "" {
		return nil
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		sessionManager.Remove(r.Context(), SessionKey)
		return nil
	}

	o, err := lookup.GetOrganizer(r.Context(), id)
	if err != nil {
		obslog.L().Warn("session refers to unknown organizer", zap.String("organizer_id", idStr), zap.Error(err))
		sessionManager.Remove(r.Context(), SessionKey)
		return nil
	}
	return o
}

func GetOrganizer(ctx context.Context) *organizer.Organizer {
	o, ok := ctx.Value(organizer.OrganizerKey).(*organizer.Organizer)
	if !ok {
		return nil
	}
	return o
}
