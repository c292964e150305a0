package workers

import (
	"context"
	"log/slog"
	"time"

	application "archivum/contexts/publishing/content-workflow/application"
	"archivum/contexts/publishing/content-workflow/ports"
)

// StaleDraftJob deletes drafts that were never submitted and have gone
// untouched past MaxAge. Deletion is an administrative action outside the
// workflow engine; submitted and published items are never touched.
type StaleDraftJob struct {
	Repository ports.Repository
	Clock      ports.Clock
	MaxAge     time.Duration
	Logger     *slog.Logger
}

func (j StaleDraftJob) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)
	maxAge := j.MaxAge
	if maxAge <= 0 {
		maxAge = 30 * 24 * time.Hour
	}
	cutoff := j.Clock.Now().UTC().Add(-maxAge)

	deleted, err := j.Repository.PurgeStaleDrafts(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted > 0 {
		logger.Info("stale drafts purged",
			"event", "stale_drafts_purged",
			"module", "publishing/content-workflow",
			"layer", "application",
			"deleted", deleted,
			"cutoff", cutoff.Format(time.RFC3339),
		)
	}
	return nil
}
