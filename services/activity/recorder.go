package activity

import (
	"context"
	"time"

	activityRepo "wanderluxe/database/repository/activity"
	"wanderluxe/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder appends audit-trail entries. Record has no error return on
// purpose: activity logging is best effort and must never abort the
// operation being recorded.
type Recorder interface {
	Record(ctx context.Context, userID, actionType, entityRef string, metadata map[string]string)
}

// DefaultRecorder writes records through the activity repository and
// swallows failures after logging them.
type DefaultRecorder struct {
	Repo   activityRepo.ActivityRepository
	Logger *zap.Logger
}

func (r *DefaultRecorder) Record(ctx context.Context, userID, actionType, entityRef string, metadata map[string]string) {
	rec := &models.ActivityRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		ActionType: actionType,
		EntityRef:  entityRef,
		Metadata:   metadata,
		CreatedAt:  time.Now().UTC(),
	}
	if err := r.Repo.Create(ctx, rec); err != nil {
		r.Logger.Warn("failed to record activity",
			zap.String("actionType", actionType),
			zap.String("entityRef", entityRef),
			zap.Error(err),
		)
	}
}
