package feedback

import (
	"time"

	id "bookswap/pkg/domain"
)

// Feedback is a rating and comment a user leaves on a swap request.
//
// Invariants:
//   - UserID references an existing User at creation
//   - SwapRequestID references an existing SwapRequest at creation
//   - Rating is a positive integer and Comment is non-empty
//   - ID, UserID, SwapRequestID, and CreatedAt are immutable
type Feedback struct {
	ID            id.FeedbackID    `json:"feedback_id"`
	UserID        id.UserID        `json:"user_id"`
	SwapRequestID id.SwapRequestID `json:"swap_request_id"`
	Rating        int              `json:"rating"`
	Comment       string           `json:"comment"`
	CreatedAt     time.Time        `json:"created_at"`
}

// CreateParams is the feedback payload. All fields required.
type CreateParams struct {
	UserID        id.UserID
	SwapRequestID id.SwapRequestID
	Rating        int
	Comment       string
}

// UpdateParams carries the feedback id inside the payload, matching the
// update operation's shape. Nil fields keep their current value.
type UpdateParams struct {
	ID      id.FeedbackID
	Rating  *int
	Comment *string
}
