package feedback

import (
	"context"

	id "bookswap/pkg/domain"
)

// Store is the feedback entity map: get, upsert, remove, iterate-all-values.
// Iteration order is unspecified; callers that need an order must sort.
type Store interface {
	Save(ctx context.Context, fb *Feedback) error
	FindByID(ctx context.Context, feedbackID id.FeedbackID) (*Feedback, error)
	Delete(ctx context.Context, feedbackID id.FeedbackID) error
	List(ctx context.Context) ([]*Feedback, error)
}
