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

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/YamileOchoa/Hospital-System/internal/config"
	"github.com/YamileOchoa/Hospital-System/internal/db"
	"github.com/YamileOchoa/Hospital-System/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// app holds what every subcommand needs: configuration and the logger.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func newApp() (*app, error) {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &app{cfg: cfg, log: logging.New(os.Stdout, cfg.Log.Level, cfg.App.Dev)}, nil
}

func (a *app) openDB(ctx context.Context) (*gorm.DB, error) {
	conn, err := db.Connect(a.log.WithContext(ctx), a.cfg.Database, a.cfg.Log.Level == "debug")
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return conn, nil
}

func (a *app) closeDB(conn *gorm.DB) {
	sqlDB, err := conn.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		a.log.Warn().Err(err).Msg("close database")
	}
}

func (a *app) httpServer(port string, h http.Handler) *http.Server {
	s := a.cfg.Server
	return &http.Server{
		Addr:         ":" + port,
		Handler:      h,
		ReadTimeout:  time.Duration(s.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.IdleTimeout) * time.Second,
	}
}

// serve runs srv until SIGINT or SIGTERM, then drains open requests.
func (a *app) serve(name string, srv *http.Server) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("server", name).Str("addr", srv.Addr).Bool("dev", a.cfg.App.Dev).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("%s server: %w", name, err)
	case <-ctx.Done():
	}
	a.log.Info().Str("server", name).Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown %s server: %w", name, err)
	}
	a.log.Info().Str("server", name).Msg("server stopped gracefully")
	return nil
}
