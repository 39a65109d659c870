package main

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/AdamBeresnev/poker-league/internal/httputil"
	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/AdamBeresnev/poker-league/internal/obslog"
	"github.com/AdamBeresnev/poker-league/internal/service"
	"github.com/AdamBeresnev/poker-league/internal/store"
	"github.com/AdamBeresnev/poker-league/views"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (app *application) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	if err := views.Render(w, r, c); err != nil {
		obslog.L().Warn("failed to render page", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func (app *application) renderStatus(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	if err := views.RenderStatus(w, r, status, c); err != nil {
		obslog.L().Warn("failed to render page", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func (app *application) leaderboardPage(w http.ResponseWriter, r *http.Request) {
	board, err := app.stats.Leaderboard(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to compute leaderboard", err)
		return
	}
	app.render(w, r, views.LeaderboardPage(app.site, board))
}

func (app *application) historyPage(w http.ResponseWriter, r *http.Request) {
	data, err := app.games.History(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to load history", err)
		return
	}
	entries := views.PrepareHistory(data.Games, data.Results, data.Players)
	app.render(w, r, views.HistoryPage(app.site, entries))
}

func (app *application) playersPage(w http.ResponseWriter, r *http.Request) {
	app.showPlayers(w, r, http.StatusOK, "", "")
}

func (app *application) showPlayers(w http.ResponseWriter, r *http.Request, status int, name, errMsg string) {
	players, err := app.players.Roster(r.Context(), false)
	if err != nil {
		httputil.InternalServerError(w, "Failed to load players", err)
		return
	}
	app.renderStatus(w, r, status, views.PlayersPage(app.site, players, name, errMsg))
}

func (app *application) profilePage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.BadRequest(w, "Invalid player ID", err)
		return
	}

	profile, err := app.players.GetProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			httputil.NotFound(w, "Player not found", err)
			return
		}
		httputil.InternalServerError(w, "Failed to load player", err)
		return
	}
	app.render(w, r, views.ProfilePage(app.site, *profile))
}

func (app *application) statsPage(w http.ResponseWriter, r *http.Request) {
	stats, err := app.stats.LeagueStats(r.Context())
	if err != nil {
		httputil.InternalServerError(w, "Failed to compute stats", err)
		return
	}
	app.render(w, r, views.StatsPage(app.site, *stats))
}

func (app *application) newGamePage(w http.ResponseWriter, r *http.Request) {
	today := league.DateOnly(time.Now())
	app.showGameForm(w, r, http.StatusOK, "Record game", "/games", views.NewGameForm(today), "")
}

func (app *application) editGamePage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.BadRequest(w, "Invalid game ID", err)
		return
	}

	data, err := app.games.GetGameForEdit(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			httputil.NotFound(w, "Game not found", err)
			return
		}
		httputil.InternalServerError(w, "Failed to load game", err)
		return
	}

	form := views.GameFormFromResults(*data.Game, data.Results)
	app.showGameForm(w, r, http.StatusOK, "Edit game", "/games/"+id.String(), form, "")
}

func (app *application) showGameForm(w http.ResponseWriter, r *http.Request, status int, title, action string, form views.GameForm, errMsg string) {
	roster, err := app.players.Roster(r.Context(), false)
	if err != nil {
		httputil.InternalServerError(w, "Failed to load players", err)
		return
	}
	players := views.FormPlayers(roster, form)
	app.renderStatus(w, r, status, views.GameFormPage(app.site, title, action, form, players, errMsg))
}

func (app *application) createGame(w http.ResponseWriter, r *http.Request) {
	sub, err := parseSubmission(r)
	if err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}

	if _, err := app.games.SubmitGame(r.Context(), sub); err != nil {
		if isValidationError(err) {
			app.showGameForm(w, r, http.StatusBadRequest, "Record game", "/games", views.GameFormFromSubmission(sub), err.Error())
			return
		}
		httputil.InternalServerError(w, "Failed to save game", err)
		return
	}
	http.Redirect(w, r, "/history", http.StatusSeeOther)
}

func (app *application) updateGame(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.BadRequest(w, "Invalid game ID", err)
		return
	}
	sub, err := parseSubmission(r)
	if err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}

	if err := app.games.UpdateGame(r.Context(), id, sub); err != nil {
		switch {
		case isValidationError(err):
			app.showGameForm(w, r, http.StatusBadRequest, "Edit game", "/games/"+id.String(), views.GameFormFromSubmission(sub), err.Error())
		case errors.Is(err, sql.ErrNoRows):
			httputil.NotFound(w, "Game not found", err)
		default:
			httputil.InternalServerError(w, "Failed to update game", err)
		}
		return
	}
	http.Redirect(w, r, "/history#game-"+id.String(), http.StatusSeeOther)
}

func (app *application) deleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.BadRequest(w, "Invalid game ID", err)
		return
	}

	if err := app.games.DeleteGame(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			httputil.NotFound(w, "Game not found", err)
			return
		}
		httputil.InternalServerError(w, "Failed to delete game", err)
		return
	}
	http.Redirect(w, r, "/history", http.StatusSeeOther)
}

// previewGame answers the form's change events with the points each player
// would receive. Incomplete forms simply preview what is there.
func (app *application) previewGame(w http.ResponseWriter, r *http.Request) {
	sub, err := parseSubmission(r)
	if err != nil {
		httputil.BadRequest(w, err.Error(), err)
		return
	}
	roster, err := app.players.Roster(r.Context(), false)
	if err != nil {
		httputil.InternalServerError(w, "Failed to load players", err)
		return
	}
	app.render(w, r, views.PointsPreviewList(league.PreviewPoints(sub), roster))
}

func (app *application) createPlayer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httputil.BadRequest(w, "Invalid form data", err)
		return
	}
	name := r.Form.Get("name")

	if _, err := app.players.RegisterPlayer(r.Context(), name); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyName):
			app.showPlayers(w, r, http.StatusBadRequest, name, err.Error())
		case errors.Is(err, store.ErrPlayerNameTaken):
			app.showPlayers(w, r, http.StatusConflict, name, "A player with that name already exists")
		default:
			httputil.InternalServerError(w, "Failed to add player", err)
		}
		return
	}
	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

func (app *application) togglePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.BadRequest(w, "Invalid player ID", err)
		return
	}

	if _, err := app.players.ToggleActive(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			httputil.NotFound(w, "Player not found", err)
			return
		}
		httputil.InternalServerError(w, "Failed to update player", err)
		return
	}
	http.Redirect(w, r, "/players", http.StatusSeeOther)
}
