package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ecodive/backoffice-server-go/internal/config"
	"github.com/ecodive/backoffice-server-go/internal/metrics"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/repository"
)

// ActivityLogger appends to the activity trail and reads it back newest first.
type ActivityLogger struct {
	repo         repository.ActivityRepository
	writeTimeout time.Duration
}

func NewActivityLogger(repo repository.ActivityRepository) *ActivityLogger {
	return &ActivityLogger{repo: repo, writeTimeout: config.ActivityWriteTimeout}
}

func (l *ActivityLogger) Record(ctx context.Context, actorID int64, actorName, action, details string) (*model.Activity, error) {
	params := model.CreateActivityParams{
		UserID:   actorID,
		UserName: actorName,
		Action:   action,
	}
	if details != "" {
		params.Details = &details
	}
	return l.repo.Create(ctx, params)
}

// RecordBestEffort writes an entry for a mutation that has already
// succeeded. Failures are logged and counted, never returned. The write
// outlives a cancelled request but is bounded by its own timeout.
func (l *ActivityLogger) RecordBestEffort(ctx context.Context, actor *model.SanitizedAccount, action, details string) {
	if actor == nil {
		log.Warn().Str("action", action).Msg("activity without actor, not recorded")
		metrics.ActivityLogFailuresTotal.WithLabelValues(action).Inc()
		return
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.writeTimeout)
	defer cancel()

	if _, err := l.Record(writeCtx, actor.ID, actor.FullName(), action, details); err != nil {
		log.Warn().
			Err(err).
			Int64("actor_id", actor.ID).
			Str("action", action).
			Msg("failed to record activity")
		metrics.ActivityLogFailuresTotal.WithLabelValues(action).Inc()
	}
}

// ListRecent returns at most limit entries; a non-positive limit means the
// default page size.
func (l *ActivityLogger) ListRecent(ctx context.Context, limit int) ([]model.Activity, error) {
	if limit <= 0 {
		limit = config.ActivityRecentLimit
	}
	return l.repo.FindRecent(ctx, limit)
}

func (l *ActivityLogger) ListByActor(ctx context.Context, actorID int64) ([]model.Activity, error) {
	return l.repo.FindByUserID(ctx, actorID)
}
