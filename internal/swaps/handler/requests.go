package handler

import (
	"strings"

	"bookswap/internal/swaps"
	id "bookswap/pkg/domain"
	dErrors "bookswap/pkg/domain-errors"
)

// CreateRequest is the HTTP request body for POST /swaps.
type CreateRequest struct {
	OwnerID     string `json:"owner_id"`
	RequesterID string `json:"requester_id"`
	BookID      string `json:"book_id"`

	parsedOwner     id.UserID
	parsedRequester id.UserID
	parsedBook      id.BookID
}

// Validate parses the three entity references.
func (r *CreateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	owner, err := id.ParseUserID(strings.TrimSpace(r.OwnerID))
	if err != nil {
		return dErrors.Wrap(dErrors.CodeValidation, "owner_id is invalid", err)
	}
	requester, err := id.ParseUserID(strings.TrimSpace(r.RequesterID))
	if err != nil {
		return dErrors.Wrap(dErrors.CodeValidation, "requester_id is invalid", err)
	}
	book, err := id.ParseBookID(strings.TrimSpace(r.BookID))
	if err != nil {
		return dErrors.Wrap(dErrors.CodeValidation, "book_id is invalid", err)
	}
	r.parsedOwner = owner
	r.parsedRequester = requester
	r.parsedBook = book
	return nil
}

// Params converts the body to the service payload.
func (r *CreateRequest) Params() swaps.CreateParams {
	return swaps.CreateParams{
		OwnerID:     r.parsedOwner,
		RequesterID: r.parsedRequester,
		BookID:      r.parsedBook,
	}
}

// UpdateRequest is the HTTP request body for PUT /swaps/{requestID}.
// Absent fields keep their stored value; the participants are immutable.
type UpdateRequest struct {
	BookID *string `json:"book_id,omitempty"`
	Status *string `json:"status,omitempty"`

	parsedBook   *id.BookID
	parsedStatus *swaps.Status
}

func (r *UpdateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.BookID == nil && r.Status == nil {
		return dErrors.New(dErrors.CodeValidation, "at least one field must be provided")
	}
	if r.BookID != nil {
		book, err := id.ParseBookID(strings.TrimSpace(*r.BookID))
		if err != nil {
			return dErrors.Wrap(dErrors.CodeValidation, "book_id is invalid", err)
		}
		r.parsedBook = &book
	}
	if r.Status != nil {
		status, err := swaps.ParseStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return err
		}
		r.parsedStatus = &status
	}
	return nil
}

// Params converts the body to the service payload.
func (r *UpdateRequest) Params() swaps.UpdateParams {
	return swaps.UpdateParams{BookID: r.parsedBook, Status: r.parsedStatus}
}
