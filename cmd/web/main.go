package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdamBeresnev/poker-league/internal/cache"
	"github.com/AdamBeresnev/poker-league/internal/config"
	"github.com/AdamBeresnev/poker-league/internal/db"
	"github.com/AdamBeresnev/poker-league/internal/live"
	"github.com/AdamBeresnev/poker-league/internal/middleware"
	"github.com/AdamBeresnev/poker-league/internal/obslog"
	"github.com/AdamBeresnev/poker-league/internal/service"
	"github.com/AdamBeresnev/poker-league/internal/store"
	"github.com/AdamBeresnev/poker-league/views"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	if err := obslog.Init(); err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer obslog.Sync()
	logger := obslog.L()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	database, err := db.InitDB(cfg)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer database.Close()

	if err := db.RunMigrations(database, cfg.DatabaseDriver, cfg.MigrationsPath); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	middleware.InitAuth()

	hub := live.NewHub()
	defer hub.Close()

	app := newApplication(database, cfg, rosterCache(cfg), hub)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting", zap.String("addr", cfg.Addr), zap.String("league", cfg.LeagueName))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

func newApplication(database *sqlx.DB, cfg *config.Config, roster service.RosterCache, hub *live.Hub) *application {
	sessionManager := scs.New()
	sessionManager.Lifetime = cfg.SessionLifetime
	if cfg.DatabaseDriver == config.DriverSQLite {
		sessionManager.Store = sqlite3store.New(database.DB)
	} else {
		sessionManager.Store = memstore.New()
	}

	gameStore := store.NewGameStore(database)
	players := service.NewPlayerService(store.NewPlayerStore(database), gameStore, roster, hub)

	return &application{
		site:           views.Site{Name: cfg.LeagueName, Currency: cfg.Currency},
		allowedOrigins: cfg.AllowedOrigins,
		sessions:       sessionManager,
		players:        players,
		games:          service.NewGameService(database, gameStore, players, hub),
		stats:          service.NewStatsService(gameStore, players),
		organizers:     service.NewOrganizerService(store.NewOrganizerStore(database)),
		hub:            hub,
	}
}

// rosterCache connects to redis when configured. A nil interface is returned
// otherwise so the services fall back to the database.
func rosterCache(cfg *config.Config) service.RosterCache {
	if cfg.RedisURL == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		obslog.L().Warn("Redis unavailable, roster cache disabled", zap.Error(err))
		return nil
	}
	obslog.L().Info("Roster cache enabled", zap.Duration("ttl", cfg.RosterCacheTTL))
	return cache.NewRosterCache(rdb, cfg.RosterCacheTTL)
}
