package ports

import (
	"context"
	"time"

	"github.com/house-hunter/marketplace-api/internal/core/domain"
)

// ActivityInput is the DTO handed from services to the activity pipeline.
type ActivityInput struct {
	Collection string
	Subject    string
	Action     string
	Actor      string
	Timestamp  time.Time
}

// ActivityRecorder accepts activities for asynchronous processing. Recording
// is fire-and-forget; failures never reach the request path.
type ActivityRecorder interface {
	Record(in ActivityInput)
}

// ActivityService processes a single activity: dedups and persists it.
type ActivityService interface {
	Process(ctx context.Context, in ActivityInput) error
}

// ActivityRepository persists activities to the audit collection.
type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.Activity) error
}
