package app

import (
	"context"
	"database/sql"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	libdb "chargecalc/backend/libs/db"
	libredis "chargecalc/backend/libs/redis"
	"chargecalc/backend/services/calculator-service/internal/config"
	httpserver "chargecalc/backend/services/calculator-service/internal/http"
	"chargecalc/backend/services/calculator-service/internal/http/handlers"
	"chargecalc/backend/services/calculator-service/internal/http/middleware"
	"chargecalc/backend/services/calculator-service/internal/metrics"
	"chargecalc/backend/services/calculator-service/internal/repository"
	"chargecalc/backend/services/calculator-service/internal/service"
	"chargecalc/backend/services/calculator-service/internal/ws"
)

const wsWriteTimeout = 10 * time.Second

// App wires calculator service dependencies.
type App struct {
	server *httpserver.Server
	db     *sql.DB
	redis  *goredis.Client
	logger *zap.Logger
}

// New constructs application graph. Postgres and redis are only connected when configured.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{logger: logger}

	var source service.TariffSource
	if cfg.DatabaseEnabled() {
		sqlDB, err := libdb.NewPostgresDB(ctx, cfg.Database.DSN, libdb.PoolOptions{})
		if err != nil {
			return nil, err
		}
		a.db = sqlDB
		source = repository.NewTariffRepository(sqlDB)
	}

	var cache service.TariffCache
	if cfg.CacheEnabled() {
		client, err := libredis.NewRedisClient(ctx, libredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		a.redis = client
		cache = repository.NewTariffCache(client, cfg.TariffCacheTTL())
	}

	tariffService := service.NewTariffService(source, cache, cfg.Defaults.UnitPriceBeforeTax, logger)
	estimateService := service.NewEstimateService(tariffService, logger)

	liveServer := ws.NewServer(ctx, ws.NewManager(), ws.NewEstimateProcessor(estimateService, logger), wsWriteTimeout, logger)

	router := httpserver.NewRouter(httpserver.RouterDeps{
		FormHandlers:  handlers.NewFormHandlers(estimateService, tariffService, cfg.Defaults, logger),
		APIHandlers:   handlers.NewAPIHandlers(estimateService, tariffService, logger),
		LiveHandler:   liveServer.HandleWS,
		HealthHandler: handlers.NewHealthHandler(),
		Metrics:       metrics.Handler(),
	})
	a.server = httpserver.NewServer(cfg.HTTPAddress(), router, logger,
		middleware.RecoveryMiddleware(logger),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(logger),
	)

	logger.Info("calculator service configured",
		zap.Bool("database", a.db != nil),
		zap.Bool("cache", a.redis != nil),
		zap.Float64("default_unit_price", cfg.Defaults.UnitPriceBeforeTax),
	)
	return a, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
}
