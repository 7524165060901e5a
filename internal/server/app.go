// Package server initializes and runs the gallery backend: it opens the
// database, runs migrations, picks the upload storage backend and starts
// the HTTP server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/avoronova/imagevault/internal/logging"
	"github.com/avoronova/imagevault/internal/server/config"
	"github.com/avoronova/imagevault/internal/server/httpapi"
	"github.com/avoronova/imagevault/internal/server/repositories/repomanager"
	"github.com/avoronova/imagevault/internal/server/services"
	"github.com/avoronova/imagevault/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	if c.SecretKey == "" {
		return nil, errors.New("token secret key is not configured")
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	files, err := newFileStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("file store init error: %w", err)
	}

	catalog := services.NewCatalog(db, rm)
	credentials := services.NewCredentials(db, rm)

	srv := httpapi.NewServer(catalog, credentials, files, c, logger)

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

func newFileStore(ctx context.Context, c *config.Config) (storage.FileStore, error) {
	switch c.StorageBackend {
	case config.StorageBackendS3:
		return storage.NewS3Store(ctx, c)
	case config.StorageBackendDisk:
		return storage.NewDiskStore(c.UploadDir, c.UploadURLPrefix)
	}
	return nil, fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.server.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "listening", "addr", app.config.EndpointAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
