package audit

import "time"

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Subject   string    `json:"subject"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Detail    string    `json:"detail,omitempty"`
}

// Actions recorded by the entity services.
const (
	ActionUserCreated     = "user_created"
	ActionUserUpdated     = "user_updated"
	ActionBookListed      = "book_listed"
	ActionBookUpdated     = "book_updated"
	ActionBookDeleted     = "book_deleted"
	ActionSwapRequested   = "swap_requested"
	ActionSwapAccepted    = "swap_accepted"
	ActionSwapRejected    = "swap_rejected"
	ActionSwapUpdated     = "swap_updated"
	ActionSwapDeleted     = "swap_deleted"
	ActionFeedbackLeft    = "feedback_left"
	ActionFeedbackUpdated = "feedback_updated"
	ActionFeedbackDeleted = "feedback_deleted"
)
