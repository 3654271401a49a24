package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "wanderluxe/database/repository/booking"
	destinationRepo "wanderluxe/database/repository/destination"
	userRepo "wanderluxe/database/repository/user"
	"wanderluxe/models"
	"wanderluxe/services/activity"
	"wanderluxe/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Activity action types appended on each transition.
const (
	ActionBookingCreated   = "booking_created"
	ActionBookingUpdated   = "booking_updated"
	ActionBookingConfirmed = "booking_confirmed"
	ActionBookingCancelled = "booking_cancelled"
	ActionBookingCompleted = "booking_completed"
	ActionBookingFinalized = "booking_finalized"
)

// DefaultBookingService implements BookingService. It owns every status
// transition; nothing else in the codebase mutates booking or payment
// status. Notification, email and activity-log side effects are isolated
// through bestEffort so ancillary failures never abort a transition.
type DefaultBookingService struct {
	Bookings     bookingRepo.BookingRepository
	Destinations destinationRepo.DestinationRepository
	Users        userRepo.UserRepository
	Ledger       *CommissionLedger
	Balancer     *AgentAssignmentBalancer
	Notifier     notification.NotificationService
	Email        notification.EmailSender
	Activity     activity.Recorder
	Logger       *zap.Logger
}

// Create validates the request, classifies it, prices it and persists a new
// PENDING booking. Agent bookings are then balanced onto an agent; an
// assignment failure leaves the booking unassigned but created.
func (s *DefaultBookingService) Create(ctx context.Context, user *models.User, req *models.BookingRequest) (*models.BookingResult, error) {
	if req.CheckInDate.IsZero() {
		return nil, NewValidationError("check-in date is required")
	}
	if req.NumberOfGuests < 1 {
		req.NumberOfGuests = 1
	}

	dest, err := s.Destinations.GetByID(ctx, req.DestinationID)
	if err != nil {
		return nil, NewNotFoundError(fmt.Sprintf("destination %s not found", req.DestinationID))
	}

	decision := Classify(dest, req)
	if req.RequestAgent {
		decision.Type = models.BookingAgent
		decision.Reason = "User requested agent assistance"
	}

	now := time.Now().UTC()
	contactEmail := req.ContactEmail
	if contactEmail == "" {
		contactEmail = user.Email
	}
	b := &models.Booking{
		ID:              uuid.New().String(),
		Reference:       newBookingReference(now),
		UserID:          user.ID,
		DestinationID:   dest.ID,
		Type:            decision.Type,
		Status:          models.StatusPending,
		PaymentStatus:   models.PaymentPending,
		TotalPrice:      CalculatePrice(dest, req.CheckInDate, req.CheckOutDate, req.NumberOfGuests),
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		NumberOfGuests:  req.NumberOfGuests,
		ContactEmail:    contactEmail,
		ContactPhone:    req.ContactPhone,
		SpecialRequests: req.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if b.Type == models.BookingAgent {
		bestEffort(s.Logger, "agent assignment", func() error {
			agents, err := s.Users.ListActiveAgents(ctx)
			if err != nil {
				return fmt.Errorf("agent directory unavailable: %w", err)
			}
			_, err = s.Balancer.Assign(ctx, b, agents)
			return err
		})
	}

	bestEffort(s.Logger, "booking created notification", func() error {
		return s.Notifier.Notify(ctx, b.UserID, models.NotifBookingCreated,
			"Booking received",
			fmt.Sprintf("Your booking %s for %s is pending.", b.Reference, dest.Name),
			map[string]string{"bookingId": b.ID, "reference": b.Reference},
		)
	})
	s.recordActivity(ctx, b, ActionBookingCreated, map[string]string{
		"routingReason": decision.Reason,
	})

	return &models.BookingResult{
		Booking:         b,
		Routing:         decision,
		RequiresPayment: b.Type == models.BookingDirect,
	}, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	return b, nil
}

func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Bookings.ListByUser(ctx, userID)
}

// Update applies the fields present in upd. Terminal bookings are rejected.
// When dates or guest count change, the total price is recomputed from the
// post-update values.
func (s *DefaultBookingService) Update(ctx context.Context, id string, upd *models.BookingUpdate) (*models.Booking, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.IsTerminal() {
		return nil, NewValidationError(fmt.Sprintf("cannot update a %s booking", strings.ToLower(string(b.Status))))
	}

	priceInputsChanged := false
	if upd.CheckInDate != nil {
		b.CheckInDate = *upd.CheckInDate
		priceInputsChanged = true
	}
	if upd.CheckOutDate != nil {
		b.CheckOutDate = upd.CheckOutDate
		priceInputsChanged = true
	}
	if upd.NumberOfGuests != nil {
		guests := *upd.NumberOfGuests
		if guests < 1 {
			guests = 1
		}
		b.NumberOfGuests = guests
		priceInputsChanged = true
	}
	if upd.ContactEmail != nil {
		b.ContactEmail = *upd.ContactEmail
	}
	if upd.ContactPhone != nil {
		b.ContactPhone = *upd.ContactPhone
	}
	if upd.SpecialRequests != nil {
		b.SpecialRequests = *upd.SpecialRequests
	}

	if priceInputsChanged {
		dest, err := s.Destinations.GetByID(ctx, b.DestinationID)
		if err != nil {
			return nil, fmt.Errorf("failed to reprice booking: %w", err)
		}
		b.TotalPrice = CalculatePrice(dest, b.CheckInDate, b.CheckOutDate, b.NumberOfGuests)
	}

	b.UpdatedAt = time.Now().UTC()
	if err := s.Bookings.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	s.recordActivity(ctx, b, ActionBookingUpdated, nil)
	return b, nil
}

// Confirm moves a PENDING booking to CONFIRMED. A payment reference marks
// the booking paid; without one the payment stays as-is, which is how agent
// confirmations work: the agent confirms availability before the client
// pays. For agent bookings the commission is ensured before the status
// write, so a confirmed agent booking is never observed without one.
func (s *DefaultBookingService) Confirm(ctx context.Context, id, paymentReference string) (*models.Booking, bool, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if b.Status != models.StatusPending {
		return b, false, nil
	}

	if b.Type == models.BookingAgent && b.AgentID != "" {
		if _, err := s.Ledger.EnsureCommission(ctx, b); err != nil {
			return nil, false, fmt.Errorf("failed to ensure commission: %w", err)
		}
	}

	b.Status = models.StatusConfirmed
	if paymentReference != "" {
		b.PaymentStatus = models.PaymentPaid
	}
	b.UpdatedAt = time.Now().UTC()
	if err := s.Bookings.Update(ctx, b); err != nil {
		return nil, false, fmt.Errorf("failed to confirm booking: %w", err)
	}

	title := "Booking confirmed"
	message := fmt.Sprintf("Your booking %s is confirmed.", b.Reference)
	if b.Type == models.BookingAgent && paymentReference == "" {
		message = fmt.Sprintf("Your booking %s was confirmed by your agent. Complete payment to finish.", b.Reference)
	}
	bestEffort(s.Logger, "booking confirmed notification", func() error {
		return s.Notifier.Notify(ctx, b.UserID, models.NotifBookingConfirmed, title, message,
			map[string]string{"bookingId": b.ID, "reference": b.Reference})
	})
	bestEffort(s.Logger, "confirmation email", func() error {
		return s.Email.SendBookingConfirmation(ctx, b)
	})
	s.recordActivity(ctx, b, ActionBookingConfirmed, map[string]string{
		"paymentReference": paymentReference,
	})
	return b, true, nil
}

// Cancel moves a PENDING or CONFIRMED booking to CANCELLED. The payment
// status always ends terminal: PAID becomes REFUNDED (refund execution is an
// external concern, this marks intent), anything else becomes FAILED.
func (s *DefaultBookingService) Cancel(ctx context.Context, id, reason string) (*models.Booking, bool, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if b.IsTerminal() {
		return b, false, nil
	}

	now := time.Now().UTC()
	b.Status = models.StatusCancelled
	b.CancellationReason = reason
	b.CancelledAt = &now
	if b.PaymentStatus == models.PaymentPaid {
		b.PaymentStatus = models.PaymentRefunded
	} else {
		b.PaymentStatus = models.PaymentFailed
	}
	b.UpdatedAt = now
	if err := s.Bookings.Update(ctx, b); err != nil {
		return nil, false, fmt.Errorf("failed to cancel booking: %w", err)
	}

	bestEffort(s.Logger, "booking cancelled notification", func() error {
		return s.Notifier.Notify(ctx, b.UserID, models.NotifBookingCancelled,
			"Booking cancelled",
			fmt.Sprintf("Your booking %s has been cancelled.", b.Reference),
			map[string]string{"bookingId": b.ID, "reference": b.Reference})
	})
	s.recordActivity(ctx, b, ActionBookingCancelled, map[string]string{
		"reason": reason,
	})
	return b, true, nil
}

// Complete moves a CONFIRMED booking to COMPLETED.
func (s *DefaultBookingService) Complete(ctx context.Context, id string) (*models.Booking, bool, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if b.Status != models.StatusConfirmed {
		return b, false, nil
	}

	b.Status = models.StatusCompleted
	b.UpdatedAt = time.Now().UTC()
	if err := s.Bookings.Update(ctx, b); err != nil {
		return nil, false, fmt.Errorf("failed to complete booking: %w", err)
	}
	s.recordActivity(ctx, b, ActionBookingCompleted, nil)
	return b, true, nil
}

// Finalize closes out a booking that is not yet COMPLETED or CANCELLED,
// appending the agent's closing notes to the special-requests field as a
// soft audit trail.
func (s *DefaultBookingService) Finalize(ctx context.Context, id, notes string) (*models.Booking, bool, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if b.IsTerminal() {
		return b, false, nil
	}

	b.Status = models.StatusCompleted
	marker := "[Finalized]"
	if notes != "" {
		marker = fmt.Sprintf("[Finalized] %s", notes)
	}
	if b.SpecialRequests != "" {
		b.SpecialRequests = b.SpecialRequests + "\n" + marker
	} else {
		b.SpecialRequests = marker
	}
	b.UpdatedAt = time.Now().UTC()
	if err := s.Bookings.Update(ctx, b); err != nil {
		return nil, false, fmt.Errorf("failed to finalize booking: %w", err)
	}
	s.recordActivity(ctx, b, ActionBookingFinalized, map[string]string{
		"notes": notes,
	})
	return b, true, nil
}

// recordActivity appends the transition to the audit trail with the
// resulting status, payment status and price. The destination name lookup is
// as best effort as the recording itself.
func (s *DefaultBookingService) recordActivity(ctx context.Context, b *models.Booking, actionType string, extra map[string]string) {
	meta := map[string]string{
		"reference":     b.Reference,
		"status":        string(b.Status),
		"paymentStatus": string(b.PaymentStatus),
		"totalPrice":    fmt.Sprintf("%.2f", b.TotalPrice),
	}
	if dest, err := s.Destinations.GetByID(ctx, b.DestinationID); err == nil {
		meta["destination"] = dest.Name
	}
	for k, v := range extra {
		if v != "" {
			meta[k] = v
		}
	}
	s.Activity.Record(ctx, b.UserID, actionType, b.Reference, meta)
}

// newBookingReference builds the human-facing identifier, distinct from the
// booking id.
func newBookingReference(t time.Time) string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("WL-%s-%s", t.Format("20060102"), frag)
}
