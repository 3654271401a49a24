package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"wanderluxe/models"
)

// In-memory fakes for the repository and side-effect seams.

type fakeBookingRepo struct {
	bookings  map[string]*models.Booking
	pending   map[string]int64
	countErrs map[string]error
	createErr error
	updateErr error
	updates   int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:  make(map[string]*models.Booking),
		pending:   make(map[string]int64),
		countErrs: make(map[string]error),
	}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) GetByReference(_ context.Context, ref string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.Reference == ref {
			clone := *b
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("booking with reference %s not found", ref)
}

func (r *fakeBookingRepo) Update(_ context.Context, b *models.Booking) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.bookings[b.ID]; !ok {
		return fmt.Errorf("booking %s not found", b.ID)
	}
	clone := *b
	r.bookings[b.ID] = &clone
	r.updates++
	return nil
}

func (r *fakeBookingRepo) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBookingRepo) CountPendingByAgent(_ context.Context, agentID string) (int64, error) {
	if err := r.countErrs[agentID]; err != nil {
		return 0, err
	}
	return r.pending[agentID], nil
}

func (r *fakeBookingRepo) BookedDestinationIDs(_ context.Context, userID string) (map[string]bool, error) {
	booked := make(map[string]bool)
	for _, b := range r.bookings {
		if b.UserID == userID {
			booked[b.DestinationID] = true
		}
	}
	return booked, nil
}

func (r *fakeBookingRepo) ListConfirmedCheckedOutBefore(_ context.Context, cutoff time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status != models.StatusConfirmed {
			continue
		}
		end := b.CheckInDate
		if b.CheckOutDate != nil {
			end = *b.CheckOutDate
		}
		if end.Before(cutoff) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListConfirmedCheckingInBetween(_ context.Context, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == models.StatusConfirmed && !b.CheckInDate.Before(from) && b.CheckInDate.Before(to) {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fakeDestinationRepo struct {
	destinations map[string]*models.Destination
}

func newFakeDestinationRepo(destinations ...*models.Destination) *fakeDestinationRepo {
	repo := &fakeDestinationRepo{destinations: make(map[string]*models.Destination)}
	for _, d := range destinations {
		repo.destinations[d.ID] = d
	}
	return repo
}

func (r *fakeDestinationRepo) GetByID(_ context.Context, id string) (*models.Destination, error) {
	d, ok := r.destinations[id]
	if !ok {
		return nil, fmt.Errorf("destination %s not found", id)
	}
	return d, nil
}

func (r *fakeDestinationRepo) List(_ context.Context) ([]models.Destination, error) {
	var out []models.Destination
	for _, d := range r.destinations {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDestinationRepo) ListFeatured(_ context.Context) ([]models.Destination, error) {
	var out []models.Destination
	for _, d := range r.destinations {
		if d.IsFeatured {
			out = append(out, *d)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users     map[string]*models.User
	agents    []models.User
	agentsErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user with email %s not found", email)
}

func (r *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) ListActiveAgents(_ context.Context) ([]models.User, error) {
	if r.agentsErr != nil {
		return nil, r.agentsErr
	}
	return r.agents, nil
}

type fakeCommissionRepo struct {
	commissions []*models.Commission
	createErr   error
}

func (r *fakeCommissionRepo) FindByAgentAndBooking(_ context.Context, agentID, bookingID string) (*models.Commission, error) {
	for _, c := range r.commissions {
		if c.AgentID == agentID && c.BookingID == bookingID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCommissionRepo) Create(_ context.Context, c *models.Commission) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.commissions = append(r.commissions, c)
	return nil
}

func (r *fakeCommissionRepo) ListByAgent(_ context.Context, agentID string) ([]models.Commission, error) {
	var out []models.Commission
	for _, c := range r.commissions {
		if c.AgentID == agentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

type notifyCall struct {
	userID    string
	notifType string
	message   string
}

type fakeNotifier struct {
	calls []notifyCall
	err   error
}

func (n *fakeNotifier) Notify(_ context.Context, userID, notifType, _, message string, _ map[string]string) error {
	if n.err != nil {
		return n.err
	}
	n.calls = append(n.calls, notifyCall{userID: userID, notifType: notifType, message: message})
	return nil
}

func (n *fakeNotifier) ListForUser(_ context.Context, _ string, _ int64) ([]models.Notification, error) {
	return nil, nil
}

func (n *fakeNotifier) MarkRead(_ context.Context, _ string) error {
	return nil
}

type fakeEmailSender struct {
	sent int
	err  error
}

func (e *fakeEmailSender) SendBookingConfirmation(_ context.Context, _ *models.Booking) error {
	if e.err != nil {
		return e.err
	}
	e.sent++
	return nil
}

type fakeRecorder struct {
	actions []string
}

func (r *fakeRecorder) Record(_ context.Context, _, actionType, _ string, _ map[string]string) {
	r.actions = append(r.actions, actionType)
}
