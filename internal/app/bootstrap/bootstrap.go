package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	notificationdispatcher "archivum/contexts/engagement/notification-dispatcher"
	notificationmemory "archivum/contexts/engagement/notification-dispatcher/adapters/memory"
	contentworkflow "archivum/contexts/publishing/content-workflow"
	workflowpostgres "archivum/contexts/publishing/content-workflow/adapters/postgres"
	workflowworkers "archivum/contexts/publishing/content-workflow/application/workers"
	"archivum/contexts/publishing/content-workflow/domain/entities"
	workflowports "archivum/contexts/publishing/content-workflow/ports"
	editsuggestions "archivum/contexts/publishing/edit-suggestions"
	grantmemory "archivum/contexts/publishing/edit-suggestions/adapters/memory"
	suggestionpostgres "archivum/contexts/publishing/edit-suggestions/adapters/postgres"
	redisadapter "archivum/contexts/publishing/edit-suggestions/adapters/redis"
	suggestionports "archivum/contexts/publishing/edit-suggestions/ports"
	"archivum/internal/platform/cache"
	"archivum/internal/platform/config"
	"archivum/internal/platform/db"
	"archivum/internal/platform/httpserver"
	"archivum/internal/platform/metrics"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	redis    *redis.Client
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	staleDrafts  workflowworkers.StaleDraftJob
	pollInterval time.Duration
	cleanup      bool
	logger       *slog.Logger
}

// grantStore is the shared capability table: the suggestion engine issues
// grants when a suggestion is approved, the content workflow consumes them
// on the suggester's first edit.
type grantStore interface {
	workflowports.EditGrantConsumer
	suggestionports.EditGrantIssuer
}

// contentReader adapts the content workflow repository into the read-only
// view the suggestion engine depends on.
type contentReader struct {
	repository workflowports.Repository
}

func (c contentReader) GetContentRef(ctx context.Context, itemID string) (suggestionports.ContentRef, error) {
	item, err := c.repository.GetContentItem(ctx, itemID)
	if err != nil {
		return suggestionports.ContentRef{}, err
	}
	return suggestionports.ContentRef{
		ItemID:    item.ItemID,
		AuthorID:  item.AuthorID,
		Published: item.State == entities.ContentStatePublished,
	}, nil
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	var grants grantStore
	if strings.TrimSpace(cfg.RedisAddr) != "" {
		redisClient, err = cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		grants = redisadapter.NewGrantStore(redisClient, logger)
	} else {
		grants = grantmemory.NewGrantTable()
	}

	workflowRepo := workflowpostgres.NewRepository(pg.DB, logger)
	workflowModule := contentworkflow.NewModule(contentworkflow.Dependencies{
		Repository: workflowRepo,
		Grants:     grants,
		Clock:      workflowpostgres.SystemClock{},
		IDGen:      workflowpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	suggestionRepo := suggestionpostgres.NewRepository(pg.DB, logger)
	suggestionModule := editsuggestions.NewModule(editsuggestions.Dependencies{
		Repository: suggestionRepo,
		Content:    contentReader{repository: workflowRepo},
		Grants:     grants,
		Clock:      suggestionpostgres.SystemClock{},
		IDGen:      suggestionpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	notifierModule := notificationdispatcher.NewModule(notificationdispatcher.Dependencies{
		Channel: notificationmemory.NewChannel(),
		Logger:  logger,
	})

	workflowMetrics := metrics.New(nil)
	server := httpserver.New(
		workflowModule,
		suggestionModule,
		notifierModule,
		workflowMetrics,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		redis:    redisClient,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := workflowpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		staleDrafts: workflowworkers.StaleDraftJob{
			Repository: repo,
			Clock:      workflowpostgres.SystemClock{},
			MaxAge:     cfg.StaleDraftMaxAge,
			Logger:     logger,
		},
		pollInterval: cfg.WorkerPollInterval,
		cleanup:      cfg.EnableStaleDraftCleanup,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.postgres != nil {
		errs = append(errs, a.postgres.Close())
	}
	return errors.Join(errs...)
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if !w.cleanup {
		w.logger.Info("worker idle",
			"event", "bootstrap_worker_idle",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.staleDrafts.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
