package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meatfest/lead-service/internal/config"
	"github.com/meatfest/lead-service/internal/domain"
	"github.com/meatfest/lead-service/internal/infrastructure/email"
	"github.com/meatfest/lead-service/internal/infrastructure/postgres"
	"github.com/meatfest/lead-service/internal/infrastructure/redis"
	"github.com/meatfest/lead-service/internal/notifier"
	"github.com/meatfest/lead-service/internal/pkg/logger"
	"github.com/meatfest/lead-service/internal/service"
	"github.com/meatfest/lead-service/internal/transport/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogLevel != "" {
		_ = os.Setenv("LOG_LEVEL", cfg.LogLevel)
	}

	logger.Init()
	log := logger.Logger.With().
		Str("service", "lead-service").
		Str("env", cfg.AppEnv).
		Logger()

	// Root ctx with signal cancellation
	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---- Postgres ----
	dbPool, err := pgxpool.New(rootCtx, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres pool create failed")
	}
	defer dbPool.Close()

	{
		pingCtx, cancel := context.WithTimeout(rootCtx, 5*time.Second)
		defer cancel()

		if err := dbPool.Ping(pingCtx); err != nil {
			log.Fatal().Err(err).Msg("postgres ping failed")
		}
		log.Info().Msg("postgres connected")
	}

	store := postgres.New(dbPool, cfg.DBTable)

	// ---- Email transport ----
	var mailer domain.Mailer
	switch cfg.EmailProvider {
	case "fake":
		mailer = email.NewFakeSender(log)
	default:
		mailer = email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.FromEmail,
			Timeout:  cfg.SMTPTimeout,
			Insecure: cfg.SMTPInsecure,
		}, log)
	}
	log.Info().Str("provider", cfg.EmailProvider).Msg("email transport configured")

	// ---- Application service ----
	nt := notifier.New(mailer, cfg.ToEmail, log)
	svc := service.NewLeadService(store, nt)
	h := rest.NewHandler(svc)

	// ---- Rate limiter (optional) ----
	var cache domain.CacheRepository
	if cfg.RLEnabled {
		rc := redis.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

		pingCtx, cancel := context.WithTimeout(rootCtx, 2*time.Second)
		defer cancel()

		// Best-effort ping; the limiter fails open anyway
		if err := rc.Client.Ping(pingCtx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed (continuing)")
		} else {
			log.Info().Msg("redis connected")
		}
		cache = rc
	}

	// ---- Router ----
	httpHandler := rest.NewRouter(rest.RouterDeps{
		Handler:      h,
		Cache:        cache,
		RLLimit:      cfg.RLLimit,
		RLWindow:     cfg.RLWindow,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})

	// ---- HTTP server ----
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("http server crashed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info().Msg("shutdown complete")
}
