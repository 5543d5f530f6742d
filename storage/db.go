package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"agriadmin/config"

	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

// InitDB opens the shared Postgres pool and verifies it answers.
func InitDB(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.WithFields(log.Fields{"host": cfg.Host, "database": cfg.Name}).Info("database connected")
	return db, nil
}

// CloseDB releases the pool, logging instead of failing during shutdown.
func CloseDB(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.WithError(err).Error("close database")
		return
	}
	log.Info("database connection closed")
}
