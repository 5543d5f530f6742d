// Command migrate applies the embedded schema and seeds user categories.
package main

import (
	"context"
	"time"

	"agriadmin/config"
	"agriadmin/storage"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	config.ConfigureLogging(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := storage.InitDB(ctx, cfg.DB)
	if err != nil {
		log.WithError(err).Fatal("database unavailable")
	}
	defer storage.CloseDB(db)

	if err := storage.Migrate(ctx, db); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	log.Info("schema up to date")
}
