package booking

import (
	"context"
	"testing"

	"wanderluxe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCommissionCreatesAtTenPercent(t *testing.T) {
	repo := &fakeCommissionRepo{}
	ledger := &CommissionLedger{Repo: repo}

	b := &models.Booking{ID: "b1", AgentID: "agent-1", TotalPrice: 3600.00}
	c, err := ledger.EnsureCommission(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, 360.00, c.Amount)
	assert.Equal(t, 10.0, c.Percentage)
	assert.Equal(t, models.CommissionPending, c.Status)
	assert.Equal(t, "agent-1", c.AgentID)
	assert.Equal(t, "b1", c.BookingID)
}

func TestEnsureCommissionIsIdempotent(t *testing.T) {
	repo := &fakeCommissionRepo{}
	ledger := &CommissionLedger{Repo: repo}

	b := &models.Booking{ID: "b1", AgentID: "agent-1", TotalPrice: 1000.00}
	first, err := ledger.EnsureCommission(context.Background(), b)
	require.NoError(t, err)
	second, err := ledger.EnsureCommission(context.Background(), b)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.commissions, 1)
}

func TestEnsureCommissionRoundsAmount(t *testing.T) {
	repo := &fakeCommissionRepo{}
	ledger := &CommissionLedger{Repo: repo}

	b := &models.Booking{ID: "b1", AgentID: "agent-1", TotalPrice: 109.99}
	c, err := ledger.EnsureCommission(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, 11.00, c.Amount)
}

func TestEnsureCommissionRequiresAgent(t *testing.T) {
	ledger := &CommissionLedger{Repo: &fakeCommissionRepo{}}

	_, err := ledger.EnsureCommission(context.Background(), &models.Booking{ID: "b1", TotalPrice: 100})
	assert.Error(t, err)
}
