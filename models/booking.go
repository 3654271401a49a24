package models

import "time"

type BookingType string

const (
	BookingDirect BookingType = "DIRECT"
	BookingAgent  BookingType = "AGENT"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// Booking is the persisted booking record. Cancellation is a state, not a
// removal: bookings are never deleted.
type Booking struct {
	ID                 string        `bson:"id" json:"id"`
	Reference          string        `bson:"reference" json:"reference"`
	UserID             string        `bson:"user_id" json:"userId"`
	DestinationID      string        `bson:"destination_id" json:"destinationId"`
	AgentID            string        `bson:"agent_id,omitempty" json:"agentId,omitempty"`
	Type               BookingType   `bson:"type" json:"type"`
	Status             BookingStatus `bson:"status" json:"status"`
	PaymentStatus      PaymentStatus `bson:"payment_status" json:"paymentStatus"`
	TotalPrice         float64       `bson:"total_price" json:"totalPrice"`
	CheckInDate        time.Time     `bson:"check_in_date" json:"checkInDate"`
	CheckOutDate       *time.Time    `bson:"check_out_date,omitempty" json:"checkOutDate,omitempty"`
	NumberOfGuests     int           `bson:"number_of_guests" json:"numberOfGuests"`
	ContactEmail       string        `bson:"contact_email" json:"contactEmail"`
	ContactPhone       string        `bson:"contact_phone,omitempty" json:"contactPhone,omitempty"`
	SpecialRequests    string        `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
	CancellationReason string        `bson:"cancellation_reason,omitempty" json:"cancellationReason,omitempty"`
	CreatedAt          time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updated_at" json:"updatedAt"`
	CancelledAt        *time.Time    `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
}

// StayNights returns the whole-day stay length, minimum 1. A booking with no
// checkout date counts as a single day.
func (b *Booking) StayNights() int {
	return stayNights(b.CheckInDate, b.CheckOutDate)
}

func stayNights(checkIn time.Time, checkOut *time.Time) int {
	if checkOut == nil {
		return 1
	}
	days := int(checkOut.Sub(checkIn).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// IsTerminal reports whether the booking is in a state that admits no
// further transitions.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// BookingRequest is the transient per-call input that produces a Booking.
type BookingRequest struct {
	DestinationID   string     `json:"destinationId" binding:"required"`
	CheckInDate     time.Time  `json:"checkInDate"`
	CheckOutDate    *time.Time `json:"checkOutDate,omitempty"`
	NumberOfGuests  int        `json:"numberOfGuests"`
	ContactEmail    string     `json:"contactEmail"`
	ContactPhone    string     `json:"contactPhone,omitempty"`
	SpecialRequests string     `json:"specialRequests,omitempty"`
	RequestAgent    bool       `json:"requestAgent,omitempty"`
}

// StayNights returns the requested stay length, minimum 1.
func (r *BookingRequest) StayNights() int {
	return stayNights(r.CheckInDate, r.CheckOutDate)
}

// BookingUpdate carries a partial update; nil fields are left untouched.
type BookingUpdate struct {
	CheckInDate     *time.Time `json:"checkInDate,omitempty"`
	CheckOutDate    *time.Time `json:"checkOutDate,omitempty"`
	NumberOfGuests  *int       `json:"numberOfGuests,omitempty"`
	ContactEmail    *string    `json:"contactEmail,omitempty"`
	ContactPhone    *string    `json:"contactPhone,omitempty"`
	SpecialRequests *string    `json:"specialRequests,omitempty"`
}

// RoutingDecision explains how a booking request was classified.
type RoutingDecision struct {
	Type            BookingType `json:"type"`
	Reason          string      `json:"reason"`
	ComplexityScore int         `json:"complexityScore"`
	Factors         []string    `json:"factors"`
}

// BookingResult is returned by booking creation: the persisted booking plus
// the routing metadata and whether the client should proceed to payment.
type BookingResult struct {
	Booking         *Booking        `json:"booking"`
	Routing         RoutingDecision `json:"routing"`
	RequiresPayment bool            `json:"requiresPayment"`
}
