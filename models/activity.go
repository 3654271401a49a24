package models

import "time"

// ActivityRecord is an audit-trail entry appended on every booking
// transition. Recording is best effort and never blocks the transition.
type ActivityRecord struct {
	ID         string            `bson:"id" json:"id"`
	UserID     string            `bson:"user_id" json:"userId"`
	ActionType string            `bson:"action_type" json:"actionType"`
	EntityRef  string            `bson:"entity_ref" json:"entityRef"`
	Metadata   map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt  time.Time         `bson:"created_at" json:"createdAt"`
}
