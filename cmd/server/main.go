package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/actuallystonmai/recommendation-engine/internal/cache"
	"github.com/actuallystonmai/recommendation-engine/internal/catalog"
	"github.com/actuallystonmai/recommendation-engine/internal/config"
	"github.com/actuallystonmai/recommendation-engine/internal/domain"
	"github.com/actuallystonmai/recommendation-engine/internal/handler"
	"github.com/actuallystonmai/recommendation-engine/internal/logging"
	"github.com/actuallystonmai/recommendation-engine/internal/repository"
	"github.com/actuallystonmai/recommendation-engine/internal/router"
	"github.com/actuallystonmai/recommendation-engine/internal/service"
	"github.com/actuallystonmai/recommendation-engine/seeds"
)

// store is what main needs from either interaction store backend.
type store interface {
	service.InteractionStore
	seeds.ListWriter
	router.Pinger
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx := context.Background()

	// ------------ Interaction store ---------------
	var (
		st      store
		cleanup func()
	)
	switch cfg.Store.Backend {
	case "redis":
		st, cleanup, err = openRedis(ctx, cfg.Redis)
	default:
		st, cleanup, err = openPostgres(ctx, cfg.Database)
	}
	if err != nil {
		logging.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("failed to open interaction store")
	}
	defer cleanup()

	// ------------ Run Migrations ---------------
	if pg, ok := st.(*repository.PostgresStore); ok {
		// for migrate-down using CLI command
		if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
			if err := pg.MigrateDown(ctx); err != nil {
				logging.Fatal().Err(err).Msg("failed to migrate down")
			}
			logging.Info().Msg("migrations dropped")
			return
		}
		if err := pg.MigrateUp(ctx); err != nil {
			logging.Fatal().Err(err).Msg("failed to migrate up")
		}
		logging.Info().Msg("migrations applied")
	}

	// ------------ Setup Seed Data ---------------
	if cfg.Seed.Enabled {
		if err := checkSeed(ctx, st, cfg.Seed.UserID); err != nil {
			logging.Fatal().Err(err).Msg("failed to check seed")
		}
	}

	// ---------------- Server --------------------
	client := catalog.NewClient(cfg.Catalog)
	svc := service.NewService(client, cache.NewCredits(client), st, service.OptionsFromConfig(cfg.Scoring))
	h := handler.NewHandler(svc)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Setup(h, cfg, st),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Str("store", cfg.Store.Backend).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig) (store, func(), error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.PoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	st := repository.NewPostgresStore(pool)
	if err := waitFor(ctx, "database", st); err != nil {
		pool.Close()
		return nil, nil, err
	}
	logging.Info().Msg("connected to PostgreSQL")
	return st, pool.Close, nil
}

func openRedis(ctx context.Context, cfg config.RedisConfig) (store, func(), error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	st := repository.NewRedisStore(client)
	if err := waitFor(ctx, "redis", st); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	logging.Info().Msg("connected to Redis")
	return st, func() { _ = client.Close() }, nil
}

func waitFor(ctx context.Context, name string, p router.Pinger) error {
	for i := 0; i < 30; i++ {
		if err := p.Ping(ctx); err == nil {
			return nil
		}
		logging.Info().Str("backend", name).Int("attempt", i+1).Msg("waiting for backend")
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("%s connection timeout after 30s", name)
}

// checkSeed writes the demo lists unless the demo user already has history.
func checkSeed(ctx context.Context, st store, userID string) error {
	watched, err := st.ListItems(ctx, userID, domain.ListWatched)
	if err != nil {
		return fmt.Errorf("check watched list: %w", err)
	}
	if len(watched) > 0 {
		logging.Info().Str("user_id", userID).Int("count", len(watched)).Msg("demo user already seeded, skipping")
		return nil
	}
	return seeds.Setup(ctx, st, userID)
}
