package models

import "time"

type CommissionStatus string

const (
	CommissionPending CommissionStatus = "PENDING"
	CommissionPaid    CommissionStatus = "PAID"
)

// Commission is the payout owed to an agent for a confirmed agent booking.
// There is at most one commission per (agent, booking) pair.
type Commission struct {
	ID         string           `bson:"id" json:"id"`
	AgentID    string           `bson:"agent_id" json:"agentId"`
	BookingID  string           `bson:"booking_id" json:"bookingId"`
	Amount     float64          `bson:"amount" json:"amount"`
	Percentage float64          `bson:"percentage" json:"percentage"`
	Status     CommissionStatus `bson:"status" json:"status"`
	CreatedAt  time.Time        `bson:"created_at" json:"createdAt"`
	PaidAt     *time.Time       `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
}
