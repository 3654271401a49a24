package booking

import (
	"context"
	"errors"
	"testing"

	"wanderluxe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBalancer(repo *fakeBookingRepo, notifier *fakeNotifier) *AgentAssignmentBalancer {
	return &AgentAssignmentBalancer{
		Bookings: repo,
		Notifier: notifier,
		Logger:   zap.NewNop(),
	}
}

func agentPool() []models.User {
	return []models.User{
		{ID: "agent-a", Role: models.RoleAgent, Status: models.UserActive},
		{ID: "agent-b", Role: models.RoleAgent, Status: models.UserActive},
		{ID: "agent-c", Role: models.RoleAgent, Status: models.UserActive},
	}
}

func pendingAgentBooking(id string) *models.Booking {
	return &models.Booking{
		ID:        id,
		Reference: "WL-20240601-TEST01",
		Type:      models.BookingAgent,
		Status:    models.StatusPending,
	}
}

func TestAssignPicksLeastLoadedAgent(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.pending["agent-a"] = 2
	repo.pending["agent-b"] = 0
	repo.pending["agent-c"] = 1
	notifier := &fakeNotifier{}
	balancer := newTestBalancer(repo, notifier)

	b := pendingAgentBooking("b1")
	require.NoError(t, repo.Create(context.Background(), b))

	agent, err := balancer.Assign(context.Background(), b, agentPool())
	require.NoError(t, err)
	require.NotNil(t, agent)
	assert.Equal(t, "agent-b", agent.ID)
	assert.Equal(t, "agent-b", b.AgentID)
	assert.Equal(t, models.StatusPending, b.Status)

	stored, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "agent-b", stored.AgentID)
}

func TestAssignTieBreaksOnFirstSeen(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.pending["agent-a"] = 1
	repo.pending["agent-b"] = 1
	repo.pending["agent-c"] = 1
	balancer := newTestBalancer(repo, &fakeNotifier{})

	b := pendingAgentBooking("b1")
	require.NoError(t, repo.Create(context.Background(), b))

	agent, err := balancer.Assign(context.Background(), b, agentPool())
	require.NoError(t, err)
	require.NotNil(t, agent)
	assert.Equal(t, "agent-a", agent.ID)
}

func TestAssignTreatsCountFailureAsZero(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.pending["agent-a"] = 1
	repo.countErrs["agent-b"] = errors.New("count query failed")
	repo.pending["agent-c"] = 3
	balancer := newTestBalancer(repo, &fakeNotifier{})

	b := pendingAgentBooking("b1")
	require.NoError(t, repo.Create(context.Background(), b))

	agent, err := balancer.Assign(context.Background(), b, agentPool())
	require.NoError(t, err)
	require.NotNil(t, agent)
	assert.Equal(t, "agent-b", agent.ID)
}

func TestAssignNoOps(t *testing.T) {
	t.Run("direct booking", func(t *testing.T) {
		repo := newFakeBookingRepo()
		balancer := newTestBalancer(repo, &fakeNotifier{})
		b := &models.Booking{ID: "b1", Type: models.BookingDirect, Status: models.StatusPending}

		agent, err := balancer.Assign(context.Background(), b, agentPool())
		require.NoError(t, err)
		assert.Nil(t, agent)
		assert.Empty(t, b.AgentID)
	})

	t.Run("empty candidate pool", func(t *testing.T) {
		repo := newFakeBookingRepo()
		balancer := newTestBalancer(repo, &fakeNotifier{})
		b := pendingAgentBooking("b1")

		agent, err := balancer.Assign(context.Background(), b, nil)
		require.NoError(t, err)
		assert.Nil(t, agent)
		assert.Empty(t, b.AgentID)
	})

	t.Run("already assigned keeps agent", func(t *testing.T) {
		repo := newFakeBookingRepo()
		notifier := &fakeNotifier{}
		balancer := newTestBalancer(repo, notifier)
		b := pendingAgentBooking("b1")
		b.AgentID = "agent-c"

		agent, err := balancer.Assign(context.Background(), b, agentPool())
		require.NoError(t, err)
		require.NotNil(t, agent)
		assert.Equal(t, "agent-c", agent.ID)
		assert.Equal(t, "agent-c", b.AgentID)
		assert.Empty(t, notifier.calls, "no reassignment notification")
	})
}

func TestAssignNotificationFailureDoesNotFailAssignment(t *testing.T) {
	repo := newFakeBookingRepo()
	notifier := &fakeNotifier{err: errors.New("notification sink down")}
	balancer := newTestBalancer(repo, notifier)

	b := pendingAgentBooking("b1")
	require.NoError(t, repo.Create(context.Background(), b))

	agent, err := balancer.Assign(context.Background(), b, agentPool())
	require.NoError(t, err)
	require.NotNil(t, agent)
	assert.Equal(t, "agent-a", b.AgentID)
}

func TestAssignNotifiesSelectedAgent(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.pending["agent-a"] = 5
	notifier := &fakeNotifier{}
	balancer := newTestBalancer(repo, notifier)

	b := pendingAgentBooking("b1")
	require.NoError(t, repo.Create(context.Background(), b))

	_, err := balancer.Assign(context.Background(), b, agentPool())
	require.NoError(t, err)
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "agent-b", notifier.calls[0].userID)
	assert.Equal(t, models.NotifAgentAssigned, notifier.calls[0].notifType)
}
