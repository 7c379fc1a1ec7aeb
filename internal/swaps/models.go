package swaps

import (
	"time"

	id "bookswap/pkg/domain"
	dErrors "bookswap/pkg/domain-errors"
)

// Status is the swap request lifecycle state.
//
// Transitions: pending → completed | rejected. Completed and rejected are
// terminal; no transition leaves them.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// validStatuses is the single source of truth for status values.
var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusCompleted: true,
	StatusRejected:  true,
}

// ParseStatus constructs a Status from external input.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, "status cannot be empty")
	}
	st := Status(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "invalid status")
	}
	return st, nil
}

// IsValid checks the status is one of the supported values.
func (s Status) IsValid() bool { return validStatuses[s] }

// IsTerminal reports whether the status admits no further transition.
func (s Status) IsTerminal() bool { return s == StatusCompleted || s == StatusRejected }

func (s Status) String() string { return string(s) }

// SwapRequest asks the owner of a book to swap it with the requester.
//
// Invariants:
//   - OwnerID and RequesterID reference existing Users at creation
//   - BookID references an existing Book at creation
//   - at most one request exists per (OwnerID, RequesterID, BookID) triple,
//     whatever its status
//   - ID, OwnerID, RequesterID, and CreatedAt are immutable
type SwapRequest struct {
	ID          id.SwapRequestID `json:"swap_request_id"`
	OwnerID     id.UserID        `json:"owner_id"`
	RequesterID id.UserID        `json:"requester_id"`
	BookID      id.BookID        `json:"book_id"`
	Status      Status           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

// CanAccept checks the request may transition to completed.
// Use with ApplyAccept so validation stays separate from mutation.
func (r *SwapRequest) CanAccept() error {
	if r.Status.IsTerminal() {
		return dErrors.New(dErrors.CodeInvariantViolation, "swap request is already "+r.Status.String())
	}
	return nil
}

// ApplyAccept transitions the request to completed. Call CanAccept first.
func (r *SwapRequest) ApplyAccept() {
	r.Status = StatusCompleted
}

// Accept validates and applies the completed transition in one call.
func (r *SwapRequest) Accept() error {
	if err := r.CanAccept(); err != nil {
		return err
	}
	r.ApplyAccept()
	return nil
}

// CanReject checks the request may transition to rejected.
func (r *SwapRequest) CanReject() error {
	if r.Status.IsTerminal() {
		return dErrors.New(dErrors.CodeInvariantViolation, "swap request is already "+r.Status.String())
	}
	return nil
}

// ApplyReject transitions the request to rejected. Call CanReject first.
func (r *SwapRequest) ApplyReject() {
	r.Status = StatusRejected
}

// Reject validates and applies the rejected transition in one call.
func (r *SwapRequest) Reject() error {
	if err := r.CanReject(); err != nil {
		return err
	}
	r.ApplyReject()
	return nil
}

// SameTriple reports whether the request covers the same
// (owner, requester, book) triple.
func (r *SwapRequest) SameTriple(owner, requester id.UserID, book id.BookID) bool {
	return r.OwnerID == owner && r.RequesterID == requester && r.BookID == book
}

// CreateParams is the swap request payload. All references required.
type CreateParams struct {
	OwnerID     id.UserID
	RequesterID id.UserID
	BookID      id.BookID
}

// UpdateParams is the payload for request updates. Nil fields keep their
// current value. Identifier fields other than the book are immutable.
type UpdateParams struct {
	BookID *id.BookID
	Status *Status
}
