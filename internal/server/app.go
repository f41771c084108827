// Package server initializes and runs the content service. It selects the
// configured storage backend, wires the content and media services into the
// HTTP API, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"livecontent/internal/common"
	"livecontent/internal/logging"
	"livecontent/internal/server/blobstore"
	"livecontent/internal/server/config"
	"livecontent/internal/server/content"
	"livecontent/internal/server/httpapi"
	"livecontent/internal/server/media"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	var logger logging.Logger = logging.NewSlogLogger(slogger)

	// Tag every log line with a per-run instance id so lines from restarts
	// are distinguishable in aggregated logs.
	if instance, err := common.MakeRandHexString(4); err == nil {
		logger = logger.With("instance", instance)
	}

	store, err := newStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	contentSvc := content.NewService(store, c.ContentMaxBytes())
	mediaSvc := media.NewService(store, c.MediaMaxBytes())
	srv := httpapi.NewServer(c, logger, contentSvc, mediaSvc)

	return &App{config: c, logger: logger, server: srv}, nil
}

func newStore(ctx context.Context, c *config.Config) (blobstore.Store, error) {
	switch c.StorageBackend {
	case "s3":
		return blobstore.NewS3Store(ctx, blobstore.S3Config{
			RootUser:     c.S3RootUser,
			RootPassword: c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
	case "postgres":
		return blobstore.NewPostgresStore(ctx, c.DatabaseDSN)
	case "memory":
		return blobstore.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"addr", app.config.EndpointAddr,
		"backend", app.config.StorageBackend,
	)

	if app.config.AdminPasswordHash == "" || app.config.JWTSecret == "" {
		app.logger.Warn(ctx, "auth secrets missing, editing endpoints will report server misconfiguration")
	}

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
