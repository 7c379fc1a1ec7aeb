// Package domain holds the typed identifiers shared across entity modules.
//
// Each entity gets its own UUID newtype so the compiler rejects a BookID
// where a UserID is expected. Construct at trust boundaries via the Parse
// functions; direct casting bypasses validation.
package domain

import (
	"github.com/google/uuid"

	dErrors "bookswap/pkg/domain-errors"
)

type (
	// UserID identifies a registered swapper.
	UserID uuid.UUID
	// BookID identifies a listed book.
	BookID uuid.UUID
	// SwapRequestID identifies a swap request between two users.
	SwapRequestID uuid.UUID
	// FeedbackID identifies a feedback record left on a swap.
	FeedbackID uuid.UUID
)

// NewUserID generates a fresh user identifier.
func NewUserID() UserID { return UserID(uuid.New()) }

// NewBookID generates a fresh book identifier.
func NewBookID() BookID { return BookID(uuid.New()) }

// NewSwapRequestID generates a fresh swap request identifier.
func NewSwapRequestID() SwapRequestID { return SwapRequestID(uuid.New()) }

// NewFeedbackID generates a fresh feedback identifier.
func NewFeedbackID() FeedbackID { return FeedbackID(uuid.New()) }

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be the nil UUID")
	}
	return u, nil
}

// ParseUserID validates and returns a UserID from external input.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID(u), nil
}

// ParseBookID validates and returns a BookID from external input.
func ParseBookID(s string) (BookID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return BookID{}, err
	}
	return BookID(u), nil
}

// ParseSwapRequestID validates and returns a SwapRequestID from external input.
func ParseSwapRequestID(s string) (SwapRequestID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return SwapRequestID{}, err
	}
	return SwapRequestID(u), nil
}

// ParseFeedbackID validates and returns a FeedbackID from external input.
func ParseFeedbackID(s string) (FeedbackID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return FeedbackID{}, err
	}
	return FeedbackID(u), nil
}

func (id UserID) String() string        { return uuid.UUID(id).String() }
func (id BookID) String() string        { return uuid.UUID(id).String() }
func (id SwapRequestID) String() string { return uuid.UUID(id).String() }
func (id FeedbackID) String() string    { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id BookID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id SwapRequestID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id FeedbackID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// MarshalText implementations keep IDs readable in JSON payloads.

func (id UserID) MarshalText() ([]byte, error)        { return []byte(id.String()), nil }
func (id BookID) MarshalText() ([]byte, error)        { return []byte(id.String()), nil }
func (id SwapRequestID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id FeedbackID) MarshalText() ([]byte, error)    { return []byte(id.String()), nil }

func (id *UserID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = UserID(u)
	return nil
}

func (id *BookID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = BookID(u)
	return nil
}

func (id *SwapRequestID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = SwapRequestID(u)
	return nil
}

func (id *FeedbackID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = FeedbackID(u)
	return nil
}
