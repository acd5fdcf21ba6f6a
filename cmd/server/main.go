package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/api"
	"github.com/pdam/billing-console/internal/core/ports"
	"github.com/pdam/billing-console/internal/infrastructure/cache"
	"github.com/pdam/billing-console/internal/infrastructure/config"
	dbredis "github.com/pdam/billing-console/internal/infrastructure/db/redis"
	"github.com/pdam/billing-console/internal/infrastructure/pdamapi"
	"github.com/pdam/billing-console/internal/infrastructure/session"
	"github.com/pdam/billing-console/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        PDAM Billing Console
// @version      1.0
// @description  JSON actions behind the admin console dialogs.
// @BasePath     /
func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad(ctx)
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
		App:    "pdam-console",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("console stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		client, err := dbredis.Connect(ctx, dbredis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer client.Close()
		rdb = client
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}

	sessions, err := newSessionProvider(cfg, rdb)
	if err != nil {
		return err
	}

	var refCache ports.ReferenceCache = cache.NewMemory()
	if rdb != nil {
		refCache = dbredis.NewReferenceCache(rdb)
	}

	client := pdamapi.NewClient(pdamapi.Config{
		BaseURL:  cfg.API.BaseURL,
		AppKey:   cfg.API.AppKey,
		AuthPath: cfg.API.AuthPath,
		Timeout:  cfg.API.Timeout,
	}, logger.Component("pdamapi"))

	deps := api.Dependencies{
		Config:   cfg,
		Logger:   log,
		Client:   client,
		Sessions: sessions,
		Cache:    refCache,
	}
	if rdb != nil {
		deps.Redis = rdb
	}
	e, err := api.NewRouter(deps)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("api", cfg.API.BaseURL).
			Str("token_store", cfg.Session.Store).
			Msg("console listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newSessionProvider(cfg *config.Config, rdb *goredis.Client) (session.Provider, error) {
	if cfg.Session.Store == config.TokenStoreRedis {
		if rdb == nil {
			return nil, errors.New("redis token store requires REDIS_ADDR")
		}
		return session.NewRedisProvider(dbredis.NewSessionStore(rdb), cfg.Session.CookieSecure), nil
	}
	provider, err := session.NewCookieProvider(cfg.Session.CookieSecret, cfg.Session.CookieSecure)
	if err != nil {
		return nil, err
	}
	return provider, nil
}
