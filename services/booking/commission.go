package booking

import (
	"context"
	"fmt"
	"time"

	commissionRepo "wanderluxe/database/repository/commission"
	"wanderluxe/models"

	"github.com/google/uuid"
)

// CommissionRate is the fixed agent payout percentage.
const CommissionRate = 10.0

// CommissionLedger derives commissions from confirmed agent bookings.
type CommissionLedger struct {
	Repo commissionRepo.CommissionRepository
}

// EnsureCommission creates the commission for a confirmed agent booking, or
// returns the existing one. It is idempotent on the (agent, booking) pair.
func (l *CommissionLedger) EnsureCommission(ctx context.Context, b *models.Booking) (*models.Commission, error) {
	if b.AgentID == "" {
		return nil, fmt.Errorf("booking %s has no agent", b.ID)
	}
	existing, err := l.Repo.FindByAgentAndBooking(ctx, b.AgentID, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up commission: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	c := &models.Commission{
		ID:         uuid.New().String(),
		AgentID:    b.AgentID,
		BookingID:  b.ID,
		Amount:     round2(b.TotalPrice * CommissionRate / 100),
		Percentage: CommissionRate,
		Status:     models.CommissionPending,
		CreatedAt:  time.Now().UTC(),
	}
	if err := l.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create commission: %w", err)
	}
	return c, nil
}
