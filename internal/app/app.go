package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/plazacomercial/locales-service/internal/config"
	"github.com/plazacomercial/locales-service/internal/layout"
	"github.com/plazacomercial/locales-service/internal/repositories"
	"github.com/plazacomercial/locales-service/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

type App struct {
	Config *config.Config
	DB     *pgxpool.Pool
	Layout *layout.Table
}

func NewApp(cfg *config.Config) (*App, error) {
	tbl, err := loadLayout(cfg.LayoutPath)
	if err != nil {
		return nil, err
	}
	utils.Logger.Infof("Catalog layout loaded with %d groups", tbl.Len())

	var (
		dbPool  *pgxpool.Pool
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		dbPool, err = newDBPool(ctx, cfg.DBUrl)
		cancel()
		if err == nil {
			utils.Logger.Infof("Successfully connected to database on attempt %d", i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed to connect to database on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
		}

		time.Sleep(backoff)
		backoff *= 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := repositories.EnsureSchema(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &App{
		Config: cfg,
		DB:     dbPool,
		Layout: tbl,
	}, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("Database connection closed.")
	}
}

func loadLayout(path string) (*layout.Table, error) {
	if path == "" {
		return layout.Default()
	}
	utils.Logger.Infof("Loading catalog layout from %s", path)
	return layout.LoadFile(path)
}

// newDBPool constructs the pgx pool with production-safe settings.
//
//   - MaxConnIdleTime closes idle sockets before an upstream proxy does
//   - HealthCheckPeriod keeps every pooled conn warm
func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	return pgxpool.ConnectConfig(ctx, cfg)
}
