// @title           Agri Admin API
// @version         1.0
// @description     Administration backend for farms, crops, plant diseases, remedies and subsidies.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agriadmin/config"
	"agriadmin/metrics"
	"agriadmin/services"
	"agriadmin/storage"
	"agriadmin/utils"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	config.ConfigureLogging(cfg)

	if err := utils.RegisterValidators(); err != nil {
		log.WithError(err).Fatal("register validators")
	}

	ctx := context.Background()
	db, err := storage.InitDB(ctx, cfg.DB)
	if err != nil {
		log.WithError(err).Fatal("database unavailable")
	}
	defer storage.CloseDB(db)

	gdb, err := storage.InitGormDB(db)
	if err != nil {
		log.WithError(err).Fatal("gorm init failed")
	}

	m := metrics.New()
	ids := func(spec storage.IDSpec) *storage.Allocator {
		return storage.NewAllocator(spec, storage.WithObserver(m))
	}

	var blobs services.BlobStore
	if cfg.Storage.Bucket != "" {
		store, err := services.NewS3BlobStore(ctx, cfg.Storage)
		if err != nil {
			log.WithError(err).Fatal("object storage init failed")
		}
		blobs = store
		log.WithField("bucket", cfg.Storage.Bucket).Info("image uploads enabled")
	} else {
		log.Warn("AWS_S3_BUCKET not set, image uploads disabled")
	}

	tokens := utils.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.RefreshSecret)
	users := services.NewUserService(db, ids(storage.UserIDs))
	crops := services.NewCropService(db, ids(storage.CropIDs))

	app := &application{
		tokens:     tokens,
		categories: users,
		auth:       services.NewAuthService(db, tokens, cfg.Auth),
		users:      users,
		farms:      services.NewFarmService(db, ids(storage.FarmIDs)),
		crops:      crops,
		diseases:   services.NewDiseaseService(db, ids(storage.DiseaseIDs)),
		remedies:   services.NewRemedyService(db, ids(storage.RemedyIDs)),
		images:     services.NewImageService(db, ids(storage.ImageIDs), blobs),
		analysis:   services.NewAnalysisService(db, ids(storage.AnalysisIDs)),
		subsidies:  services.NewSubsidyService(db, ids(storage.SubsidyIDs)),
		catalogs:   services.NewCatalogs(gdb, storage.WithObserver(m)),
		metrics:    m,
	}

	scheduler, err := startScheduler(cfg.CropSweepSchedule, newSweepJob(crops, m))
	if err != nil {
		log.WithError(err).Fatal("failed to schedule crop sweep")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(app, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	<-quit
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Wait for a running sweep before the pool goes away.
	<-scheduler.Stop().Done()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	log.Info("server exited")
}
