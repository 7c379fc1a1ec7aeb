package handler

import (
	"strings"

	"bookswap/internal/users"
	dErrors "bookswap/pkg/domain-errors"
)

// CreateRequest is the HTTP request body for POST /users.
type CreateRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// Validate trims the payload. Field-level format rules stay in the
// service so every caller gets the same checks.
func (r *CreateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	return nil
}

// Params converts the body to the service payload.
func (r *CreateRequest) Params() users.CreateParams {
	return users.CreateParams{Name: r.Name, Email: r.Email, PhoneNumber: r.PhoneNumber}
}

// UpdateRequest is the HTTP request body for PUT /users/{userID}.
// Absent fields keep their stored value.
type UpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Name == nil && r.Email == nil && r.PhoneNumber == nil {
		return dErrors.New(dErrors.CodeValidation, "at least one field must be provided")
	}
	trim(r.Name)
	trim(r.Email)
	trim(r.PhoneNumber)
	return nil
}

// Params converts the body to the service payload.
func (r *UpdateRequest) Params() users.UpdateParams {
	return users.UpdateParams{Name: r.Name, Email: r.Email, PhoneNumber: r.PhoneNumber}
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
