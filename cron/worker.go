package cron

import (
	"context"
	"fmt"
	"time"

	"wanderluxe/config"
	bookingRepo "wanderluxe/database/repository/booking"
	"wanderluxe/models"
	"wanderluxe/services/booking"
	"wanderluxe/services/notification"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Task types handled by the housekeeping worker.
const (
	TypeCheckInReminderSweep = "booking:checkin_reminders"
	TypeAutoCompleteSweep    = "booking:auto_complete"
)

// Housekeeper runs the periodic booking sweeps: check-in reminders for
// upcoming confirmed stays, and automatic completion of confirmed stays
// whose checkout date has passed. Manual finalize remains available for the
// agent-driven path.
type Housekeeper struct {
	Bookings bookingRepo.BookingRepository
	Svc      booking.BookingService
	Notifier notification.NotificationService
	Logger   *zap.Logger
}

// InitHousekeepingWorker starts the asynq server and scheduler in the
// background.
func InitHousekeepingWorker(hk *Housekeeper) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCheckInReminderSweep, hk.handleReminderSweep)
	mux.HandleFunc(TypeAutoCompleteSweep, hk.handleAutoCompleteSweep)

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeCheckInReminderSweep, nil)); err != nil {
		hk.Logger.Error("failed to register reminder sweep", zap.Error(err))
	}
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeAutoCompleteSweep, nil)); err != nil {
		hk.Logger.Error("failed to register auto-complete sweep", zap.Error(err))
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			hk.Logger.Error("housekeeping scheduler stopped", zap.Error(err))
		}
	}()
	go func() {
		hk.Logger.Info("starting housekeeping worker")
		if err := srv.Run(mux); err != nil {
			hk.Logger.Error("housekeeping worker stopped", zap.Error(err))
		}
	}()
}

// handleReminderSweep notifies users whose confirmed stay starts within the
// configured lead window. A failure for one booking does not stop the sweep.
func (hk *Housekeeper) handleReminderSweep(ctx context.Context, _ *asynq.Task) error {
	leadDays := config.AppConfig.ReminderLeadDays
	if leadDays <= 0 {
		leadDays = 2
	}
	now := time.Now().UTC()
	upcoming, err := hk.Bookings.ListConfirmedCheckingInBetween(ctx, now, now.AddDate(0, 0, leadDays))
	if err != nil {
		return fmt.Errorf("failed to list upcoming bookings: %w", err)
	}

	for i := range upcoming {
		b := &upcoming[i]
		err := hk.Notifier.Notify(ctx, b.UserID, models.NotifCheckInReminder,
			"Your trip is coming up",
			fmt.Sprintf("Booking %s checks in on %s.", b.Reference, b.CheckInDate.Format("2006-01-02")),
			map[string]string{"bookingId": b.ID, "reference": b.Reference},
		)
		if err != nil {
			hk.Logger.Warn("failed to send check-in reminder",
				zap.String("bookingId", b.ID),
				zap.Error(err),
			)
		}
	}
	hk.Logger.Info("reminder sweep done", zap.Int("bookings", len(upcoming)))
	return nil
}

// handleAutoCompleteSweep completes confirmed bookings whose stay has ended.
func (hk *Housekeeper) handleAutoCompleteSweep(ctx context.Context, _ *asynq.Task) error {
	ended, err := hk.Bookings.ListConfirmedCheckedOutBefore(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to list ended bookings: %w", err)
	}

	completed := 0
	for i := range ended {
		if _, changed, err := hk.Svc.Complete(ctx, ended[i].ID); err != nil {
			hk.Logger.Warn("failed to auto-complete booking",
				zap.String("bookingId", ended[i].ID),
				zap.Error(err),
			)
		} else if changed {
			completed++
		}
	}
	hk.Logger.Info("auto-complete sweep done",
		zap.Int("candidates", len(ended)),
		zap.Int("completed", completed),
	)
	return nil
}
