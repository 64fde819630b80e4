package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/andreyxaxa/Social-Submissions/config"
	"github.com/andreyxaxa/Social-Submissions/internal/controller/restapi"
	"github.com/andreyxaxa/Social-Submissions/internal/usecase/submission"
	"github.com/andreyxaxa/Social-Submissions/pkg/httpserver"
	"github.com/andreyxaxa/Social-Submissions/pkg/logger"
	"github.com/andreyxaxa/Social-Submissions/pkg/metrics"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)
	l.Info("app - Run - port=%s storage=%s s3_secret=%s cloudinary_secret=%s kafka=%t inspect=%t",
		cfg.HTTP.Port, cfg.Storage.Backend, setOrNot(cfg.S3.SecretKey), setOrNot(cfg.Cloudinary.APISecret),
		cfg.Kafka.Enabled, cfg.Upload.InspectContent)

	// Metrics
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Repository

	// document store
	submissionRepo, closeStore, err := newSubmissionRepo(ctx, cfg)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newSubmissionRepo: %w", err))
	}
	defer closeStore()

	// image storage
	imageStorage, err := newImageStorage(ctx, cfg)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newImageStorage: %w", err))
	}
	l.Info("app - Run - image storage: %s", imageStorage.Name())

	// Infrastructure
	events, err := newEventsSender(ctx, cfg)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newEventsSender: %w", err))
	}

	// Use-Case
	submissionUseCase := submission.New(
		submissionRepo,
		imageStorage,
		newInspector(cfg),
		events,
		m,
		cfg.Upload.MaxFiles,
		l,
	)

	// HTTP Server
	httpServer := httpserver.New(l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
		httpserver.BodyLimit(cfg.HTTP.BodyLimit),
	)
	restapi.NewRouter(httpServer.App, cfg, submissionUseCase, m, l)

	// Start Components
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}

	err = events.Close()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - events.Close: %w", err))
	}
}
