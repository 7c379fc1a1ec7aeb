package users

import (
	"time"

	id "bookswap/pkg/domain"
)

// User is a registered swapper profile.
//
// Invariants:
//   - Email is unique across all users (case-insensitive)
//   - Owner is the caller subject captured at creation and never mutated
//   - ID and CreatedAt are immutable after construction
type User struct {
	ID          id.UserID `json:"user_id"`
	Owner       string    `json:"owner"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateParams is the payload for profile creation. All fields required.
type CreateParams struct {
	Name        string
	Email       string
	PhoneNumber string
}

// UpdateParams is the payload for profile updates. Nil fields keep their
// current value; provided fields replace it and are re-validated.
type UpdateParams struct {
	Name        *string
	Email       *string
	PhoneNumber *string
}
