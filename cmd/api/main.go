package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"kaupapa-calendar/internal/adapters/auth/idp"
	pg "kaupapa-calendar/internal/adapters/storage/postgres"
	"kaupapa-calendar/internal/platform/config"
	"kaupapa-calendar/internal/platform/logger"
	"kaupapa-calendar/internal/ports/auth"
	"kaupapa-calendar/internal/router"
	"kaupapa-calendar/internal/seed"
)

// @title Kaupapa Calendar API
// @version 1.0
// @description Calendario compartido entre kaupapa: eventos, avisos de clash y contadores.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	s := seed.Default()
	if cfg.SeedFile != "" {
		s, err = seed.Load(cfg.SeedFile)
		if err != nil {
			log.Error("seed", map[string]any{"error": err.Error(), "file": cfg.SeedFile})
			os.Exit(1)
		}
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
	}

	// Sin AUTH_VERIFY_URL queda en modo dev (header X-Entity-ID).
	var verifier auth.AuthVerifier
	if cfg.AuthVerifyURL != "" {
		verifier = idp.NewVerifier(idp.Config{
			VerifyURL:    cfg.AuthVerifyURL,
			APIKey:       cfg.AuthAPIKey,
			APIKeyHeader: cfg.AuthAPIKeyHeader,
			Timeout:      cfg.AuthTimeout,
		})
		log.Info("auth: bearer token mode", nil)
	}

	r, err := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Logger:       log,
		Seed:         &s,
		SeedEvents:   cfg.SeedDemoEvents && db == nil,
	})
	if err != nil {
		log.Error("router", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
}
