package feedback

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"bookswap/internal/audit"
	"bookswap/internal/platform/metrics"
	id "bookswap/pkg/domain"
	dErrors "bookswap/pkg/domain-errors"
	"bookswap/pkg/platform/sentinel"
	"bookswap/pkg/requestcontext"
)

// UserChecker verifies that the feedback author exists.
type UserChecker interface {
	Exists(ctx context.Context, userID id.UserID) (bool, error)
}

// SwapChecker verifies that the referenced swap request exists.
type SwapChecker interface {
	Exists(ctx context.Context, requestID id.SwapRequestID) (bool, error)
}

// AuditPublisher records domain events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service owns the Feedback records.
type Service struct {
	store   Store
	users   UserChecker
	swaps   SwapChecker
	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   AuditPublisher
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) { s.audit = publisher }
}

// NewService constructs a feedback Service.
func NewService(store Store, users UserChecker, swaps SwapChecker, opts ...Option) *Service {
	s := &Service{store: store, users: users, swaps: swaps, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create records feedback for an existing swap request.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Feedback, error) {
	if params.UserID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "user_id is required")
	}
	if params.SwapRequestID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "swap_request_id is required")
	}
	if params.Rating <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "rating must be a positive integer")
	}
	if strings.TrimSpace(params.Comment) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "comment is required")
	}

	ok, err := s.users.Exists(ctx, params.UserID)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to check user", err)
	}
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	ok, err = s.swaps.Exists(ctx, params.SwapRequestID)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to check swap request", err)
	}
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "swap request not found")
	}

	fb := &Feedback{
		ID:            id.NewFeedbackID(),
		UserID:        params.UserID,
		SwapRequestID: params.SwapRequestID,
		Rating:        params.Rating,
		Comment:       params.Comment,
		CreatedAt:     requestcontext.Now(ctx),
	}
	if err := s.store.Save(ctx, fb); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to save feedback", err)
	}

	s.metrics.IncrementEntityCreated("feedback")
	s.emit(ctx, audit.ActionFeedbackLeft, fb.ID.String(), fb.SwapRequestID.String())
	return fb, nil
}

// Update applies a partial replacement of rating and comment. The entity
// references are immutable.
func (s *Service) Update(ctx context.Context, params UpdateParams) (*Feedback, error) {
	fb, err := s.GetByID(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	if params.Rating != nil {
		if *params.Rating <= 0 {
			return nil, dErrors.New(dErrors.CodeValidation, "rating must be a positive integer")
		}
		fb.Rating = *params.Rating
	}
	if params.Comment != nil {
		if strings.TrimSpace(*params.Comment) == "" {
			return nil, dErrors.New(dErrors.CodeValidation, "comment is required")
		}
		fb.Comment = *params.Comment
	}

	if err := s.store.Save(ctx, fb); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to save feedback", err)
	}

	s.emit(ctx, audit.ActionFeedbackUpdated, fb.ID.String(), "")
	return fb, nil
}

// GetByID returns the feedback for the identifier.
func (s *Service) GetByID(ctx context.Context, feedbackID id.FeedbackID) (*Feedback, error) {
	fb, err := s.store.FindByID(ctx, feedbackID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "feedback not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to load feedback", err)
	}
	return fb, nil
}

// List returns all feedback. An empty store is NotFound by contract.
func (s *Service) List(ctx context.Context) ([]*Feedback, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no feedback")
	}
	return all, nil
}

// ListByUser returns the feedback the user authored.
func (s *Service) ListByUser(ctx context.Context, userID id.UserID) ([]*Feedback, error) {
	return s.filtered(ctx, "no feedback by user", func(fb *Feedback) bool {
		return fb.UserID == userID
	})
}

// ListBySwapRequest returns the feedback left on a swap request.
func (s *Service) ListBySwapRequest(ctx context.Context, requestID id.SwapRequestID) ([]*Feedback, error) {
	return s.filtered(ctx, "no feedback for swap request", func(fb *Feedback) bool {
		return fb.SwapRequestID == requestID
	})
}

// Delete removes feedback permanently.
func (s *Service) Delete(ctx context.Context, feedbackID id.FeedbackID) error {
	err := s.store.Delete(ctx, feedbackID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "feedback not found")
	}
	if err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "failed to delete feedback", err)
	}
	s.emit(ctx, audit.ActionFeedbackDeleted, feedbackID.String(), "")
	return nil
}

func (s *Service) list(ctx context.Context) ([]*Feedback, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to list feedback", err)
	}
	return all, nil
}

func (s *Service) filtered(ctx context.Context, emptyMsg string, keep func(*Feedback) bool) ([]*Feedback, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Feedback, 0, len(all))
	for _, fb := range all {
		if keep(fb) {
			out = append(out, fb)
		}
	}
	if len(out) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, emptyMsg)
	}
	return out, nil
}

func (s *Service) emit(ctx context.Context, action, entityID, detail string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, audit.Event{
		Action:   action,
		Entity:   "feedback",
		EntityID: entityID,
		Detail:   detail,
	}); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", action, "error", err)
	}
}
