package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/house-hunter/marketplace-api/internal/api/metrics"
	"github.com/house-hunter/marketplace-api/internal/core/domain"
	"github.com/house-hunter/marketplace-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, collection, subject, action string, ts time.Time) (bool, error)
	Mark(ctx context.Context, collection, subject, action string, ts time.Time) error
}

type activityService struct {
	repo  ports.ActivityRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, dedup DedupChecker, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single audit activity.
func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	isDup, err := s.dedup.IsDuplicate(ctx, in.Collection, in.Subject, in.Action, in.Timestamp)
	if err != nil {
		metrics.ActivitiesErrorsTotal.WithLabelValues("dedup_failed").Inc()
		s.log.Warn().Err(err).Str("subject", in.Subject).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.ActivitiesDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("subject", in.Subject).Str("action", in.Action).Msg("duplicate activity skipped")
		return nil
	} else {
		metrics.ActivitiesDedupTotal.WithLabelValues("miss").Inc()
	}

	// Mark before writing so a retry after a partial failure stays a no-op.
	if markErr := s.dedup.Mark(ctx, in.Collection, in.Subject, in.Action, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("subject", in.Subject).Msg("failed to set dedup key")
	}

	activity := &domain.Activity{
		Collection: in.Collection,
		Subject:    in.Subject,
		Action:     in.Action,
		Actor:      in.Actor,
		Timestamp:  in.Timestamp,
	}
	if err := s.repo.Insert(ctx, activity); err != nil {
		metrics.ActivitiesErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process activity: %w", err)
	}

	metrics.ActivitiesRecordedTotal.WithLabelValues(in.Collection, in.Action).Inc()
	s.log.Debug().
		Str("collection", in.Collection).
		Str("subject", in.Subject).
		Str("action", in.Action).
		Msg("activity recorded")
	return nil
}
