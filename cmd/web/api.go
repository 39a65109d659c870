package main

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/AdamBeresnev/poker-league/internal/httputil"
	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (app *application) apiLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := app.stats.Leaderboard(r.Context())
	if err != nil {
		httputil.JSONError(w, http.StatusInternalServerError, "failed to compute leaderboard", err)
		return
	}
	if board == nil {
		board = []league.PlayerSummary{}
	}
	httputil.WriteJSON(w, http.StatusOK, board)
}

func (app *application) apiStats(w http.ResponseWriter, r *http.Request) {
	stats, err := app.stats.LeagueStats(r.Context())
	if err != nil {
		httputil.JSONError(w, http.StatusInternalServerError, "failed to compute stats", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

func (app *application) apiPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "invalid player id", err)
		return
	}

	profile, err := app.players.GetProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			httputil.JSONError(w, http.StatusNotFound, "player not found", err)
			return
		}
		httputil.JSONError(w, http.StatusInternalServerError, "failed to load player", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}
