package handler

import (
	"strings"

	"bookswap/internal/feedback"
	id "bookswap/pkg/domain"
	dErrors "bookswap/pkg/domain-errors"
)

// CreateRequest is the HTTP request body for POST /feedback.
type CreateRequest struct {
	UserID        string `json:"user_id"`
	SwapRequestID string `json:"swap_request_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`

	parsedUser id.UserID
	parsedSwap id.SwapRequestID
}

// Validate parses the entity references and trims the comment.
func (r *CreateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	userID, err := id.ParseUserID(strings.TrimSpace(r.UserID))
	if err != nil {
		return dErrors.Wrap(dErrors.CodeValidation, "user_id is invalid", err)
	}
	swapID, err := id.ParseSwapRequestID(strings.TrimSpace(r.SwapRequestID))
	if err != nil {
		return dErrors.Wrap(dErrors.CodeValidation, "swap_request_id is invalid", err)
	}
	r.parsedUser = userID
	r.parsedSwap = swapID
	r.Comment = strings.TrimSpace(r.Comment)
	return nil
}

// Params converts the body to the service payload.
func (r *CreateRequest) Params() feedback.CreateParams {
	return feedback.CreateParams{
		UserID:        r.parsedUser,
		SwapRequestID: r.parsedSwap,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

// UpdateRequest is the HTTP request body for PUT /feedback. The payload
// carries the feedback id; absent fields keep their stored value.
type UpdateRequest struct {
	FeedbackID string  `json:"feedback_id"`
	Rating     *int    `json:"rating,omitempty"`
	Comment    *string `json:"comment,omitempty"`

	parsedID id.FeedbackID
}

func (r *UpdateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	feedbackID, err := id.ParseFeedbackID(strings.TrimSpace(r.FeedbackID))
	if err != nil {
		return dErrors.Wrap(dErrors.CodeValidation, "feedback_id is invalid", err)
	}
	r.parsedID = feedbackID
	if r.Rating == nil && r.Comment == nil {
		return dErrors.New(dErrors.CodeValidation, "at least one field must be provided")
	}
	if r.Comment != nil {
		trimmed := strings.TrimSpace(*r.Comment)
		r.Comment = &trimmed
	}
	return nil
}

// Params converts the body to the service payload.
func (r *UpdateRequest) Params() feedback.UpdateParams {
	return feedback.UpdateParams{ID: r.parsedID, Rating: r.Rating, Comment: r.Comment}
}
