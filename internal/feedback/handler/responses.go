package handler

import (
	"time"

	"bookswap/internal/feedback"
)

// FeedbackResponse is the HTTP shape of a feedback record.
type FeedbackResponse struct {
	ID            string    `json:"feedback_id"`
	UserID        string    `json:"user_id"`
	SwapRequestID string    `json:"swap_request_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromFeedback converts a domain Feedback to its HTTP shape.
func FromFeedback(fb *feedback.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:            fb.ID.String(),
		UserID:        fb.UserID.String(),
		SwapRequestID: fb.SwapRequestID.String(),
		Rating:        fb.Rating,
		Comment:       fb.Comment,
		CreatedAt:     fb.CreatedAt,
	}
}

// FromFeedbackList converts a feedback slice.
func FromFeedbackList(all []*feedback.Feedback) []*FeedbackResponse {
	out := make([]*FeedbackResponse, 0, len(all))
	for _, fb := range all {
		out = append(out, FromFeedback(fb))
	}
	return out
}
