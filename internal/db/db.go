package db

import (
	"fmt"
	"strings"

	"github.com/AdamBeresnev/poker-league/internal/config"
	"github.com/AdamBeresnev/poker-league/internal/obslog"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

func InitDB(cfg *config.Config) (*sqlx.DB, error) {
	dsn := cfg.DatabaseURL
	if cfg.DatabaseDriver == config.DriverSQLite && !strings.Contains(dsn, "_foreign_keys") {
		dsn = withParam(dsn, "_foreign_keys=on")
	}

	conn, err := sqlx.Connect(cfg.DatabaseDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.DatabaseDriver, err)
	}

	if cfg.DatabaseDriver == config.DriverSQLite {
		// One writer at a time keeps sqlite from returning SQLITE_BUSY under load
		conn.SetMaxOpenConns(1)
	}

	obslog.L().Info("database connected", zap.String("driver", cfg.DatabaseDriver))
	return conn, nil
}

func RunMigrations(conn *sqlx.DB, driverName string, sourceURL string) error {
	var (
		driver database.Driver
		err    error
	)
	switch driverName {
	case config.DriverPostgres:
		driver, err = postgres.WithInstance(conn.DB, &postgres.Config{})
	default:
		driver, err = sqlite3.WithInstance(conn.DB, &sqlite3.Config{})
	}
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, driverName, driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	obslog.L().Info("migrations applied", zap.String("source", sourceURL))
	return nil
}

func withParam(dsn, param string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}
