package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cat-collector/internal/adapters/auth/session"
	objmem "cat-collector/internal/adapters/objectstore/memory"
	"cat-collector/internal/adapters/objectstore/s3"
	pg "cat-collector/internal/adapters/storage/postgres"
	lite "cat-collector/internal/adapters/storage/sqlite"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/platform/config"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/ports/objectstore"
	"cat-collector/internal/router"
)

// @title Cat Collector API
// @version 1.0
// @description Gatos, juguetes, comidas y fotos; cada gato pertenece a un usuario.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", logger.Fields{"err": err})
		os.Exit(1)
	}
	log.Info("server exited", nil)
}

func run(cfg config.Config, log logger.Logger) error {
	ctx := context.Background()

	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	uploader, err := newUploader(ctx, cfg)
	if err != nil {
		return err
	}

	opts := router.Options{
		Logger:       log,
		CookieSecure: cfg.CookieSecure,
		DB:           db,
		Driver:       cfg.StorageDriver,
		Uploader:     uploader,
		Photos: photos.Config{
			BaseURL:       cfg.S3BaseURL,
			Bucket:        cfg.S3Bucket,
			UploadTimeout: cfg.UploadTimeout,
		},
	}
	if !cfg.DevAuth {
		sessions, err := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
		if err != nil {
			return fmt.Errorf("session manager: %w", err)
		}
		opts.AuthVerifier = sessions
		opts.TokenIssuer = sessions
	} else {
		log.Warn("dev auth enabled: X-Debug-User-ID is trusted", nil)
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", logger.Fields{
			"addr":         server.Addr,
			"storage":      cfg.StorageDriver,
			"object_store": cfg.ObjectStore,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// openStore devuelve nil para el driver en memoria.
func openStore(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return db, nil
	case config.DriverSQLite:
		return lite.Open(ctx, cfg.SQLitePath)
	default:
		return nil, nil
	}
}

func newUploader(ctx context.Context, cfg config.Config) (objectstore.Uploader, error) {
	if cfg.ObjectStore != config.ObjectStoreS3 {
		return objmem.NewStore(), nil
	}
	u, err := s3.New(ctx, s3.Options{
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}
