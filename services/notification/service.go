package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "wanderluxe/database/repository/notification"
	"wanderluxe/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService persists notifications for in-app delivery.
type DefaultNotificationService struct {
	Repo   notificationRepo.NotificationRepository
	Logger *zap.Logger
}

func (s *DefaultNotificationService) Notify(ctx context.Context, userID, notifType, title, message string, data map[string]string) error {
	if userID == "" {
		return fmt.Errorf("notify: missing user id")
	}
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return fmt.Errorf("notify: failed to store notification for user %s: %w", userID, err)
	}
	s.Logger.Debug("notification stored",
		zap.String("userId", userID),
		zap.String("type", notifType),
	)
	return nil
}

func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.Repo.ListByUser(ctx, userID, limit)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) error {
	return s.Repo.MarkRead(ctx, id)
}

// LogEmailSender is the default EmailSender: it records the intent and
// succeeds. Real delivery is an external collaborator.
type LogEmailSender struct {
	Logger *zap.Logger
}

func (s *LogEmailSender) SendBookingConfirmation(_ context.Context, b *models.Booking) error {
	s.Logger.Info("booking confirmation email queued",
		zap.String("reference", b.Reference),
		zap.String("email", b.ContactEmail),
	)
	return nil
}
