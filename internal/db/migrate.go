// Package db opens the reference API database and keeps its schema and
// baseline rows in place.
package db

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/YamileOchoa/Hospital-System/internal/config"
	"github.com/YamileOchoa/Hospital-System/internal/models"
)

const connectAttempts = 5

var passwordRe = regexp.MustCompile(`(password=)(\S+)`)

// Connect opens the configured database, retrying a few times so Postgres
// has time to come up next to the API container.
func Connect(ctx context.Context, cfg config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	log := zerolog.Ctx(ctx)
	level := logger.Silent
	if debug {
		level = logger.Info
	}
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(level)}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
		log.Info().Str("driver", "sqlite").Str("path", cfg.SQLitePath).Msg("opening database")
	case "postgres":
		dsn := cfg.DSN()
		dialector = postgres.Open(dsn)
		log.Info().Str("driver", "postgres").Str("dsn", passwordRe.ReplaceAllString(dsn, "${1}***")).Msg("opening database")
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := 1; i <= connectAttempts; i++ {
		db, err = gorm.Open(dialector, gcfg)
		if err == nil {
			err = ping(ctx, db)
		}
		if err == nil {
			return db, nil
		}
		log.Warn().Err(err).Int("attempt", i).Msg("database not ready")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(i) * time.Second):
		}
	}
	return nil, fmt.Errorf("connect database after %d attempts: %w", connectAttempts, err)
}

// ping checks the connection and releases the pool when it is not usable,
// so a failed attempt does not leak into the next one.
func ping(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).Exec("SELECT 1").Error
	if err == nil {
		return nil
	}
	if sqlDB, derr := db.DB(); derr == nil {
		_ = sqlDB.Close()
	}
	return err
}

// Migrate creates or updates every table of the hospital schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
