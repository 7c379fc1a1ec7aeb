package books

import (
	"time"

	id "bookswap/pkg/domain"
)

// Book is a listed book owned by a user.
//
// Invariants:
//   - UserID references an existing User at creation time
//   - ID, UserID, and CreatedAt are immutable after construction
type Book struct {
	ID          id.BookID `json:"book_id"`
	UserID      id.UserID `json:"user_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateParams is the listing payload. All fields required.
type CreateParams struct {
	UserID      id.UserID
	Title       string
	Author      string
	Genre       string
	Description string
	ImageURL    string
}

// UpdateParams is the payload for listing updates. Nil fields keep their
// current value.
type UpdateParams struct {
	Title       *string
	Author      *string
	Genre       *string
	Description *string
	ImageURL    *string
}

// recentLimit caps the getRecentBooks view at the ten newest listings.
const recentLimit = 10
