package swaps

import (
	"context"
	"errors"
	"log/slog"

	"bookswap/internal/audit"
	"bookswap/internal/platform/metrics"
	id "bookswap/pkg/domain"
	dErrors "bookswap/pkg/domain-errors"
	"bookswap/pkg/platform/sentinel"
	"bookswap/pkg/requestcontext"
)

// UserChecker verifies that referenced users exist.
type UserChecker interface {
	Exists(ctx context.Context, userID id.UserID) (bool, error)
}

// BookChecker verifies that the referenced book exists.
type BookChecker interface {
	Exists(ctx context.Context, bookID id.BookID) (bool, error)
}

// AuditPublisher records domain events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service owns the SwapRequest records and drives the status lifecycle:
// creation with duplicate-triple prevention, accept/reject transitions, and
// the per-user and global counters.
type Service struct {
	store   Store
	users   UserChecker
	books   BookChecker
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

// NewService constructs a swap request Service.
func NewService(store Store, users UserChecker, books BookChecker, opts ...Option) *Service {
	s := &Service{store: store, users: users, books: books, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create records a pending swap request. Any existing request for the same
// (owner, requester, book) triple blocks creation, whatever its status —
// a completed swap for the triple is as blocking as a pending one.
func (s *Service) Create(ctx context.Context, params CreateParams) (*SwapRequest, error) {
	if params.OwnerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "owner_id is required")
	}
	if params.RequesterID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "requester_id is required")
	}
	if params.BookID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "book_id is required")
	}

	if err := s.ensureUser(ctx, params.OwnerID, "owner not found"); err != nil {
		return nil, err
	}
	if err := s.ensureUser(ctx, params.RequesterID, "requester not found"); err != nil {
		return nil, err
	}
	ok, err := s.books.Exists(ctx, params.BookID)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to check book", err)
	}
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "book not found")
	}

	existing, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	for _, request := range existing {
		if request.SameTriple(params.OwnerID, params.RequesterID, params.BookID) {
			return nil, dErrors.New(dErrors.CodeValidation, "swap request already exists for this book")
		}
	}

	request := &SwapRequest{
		ID:          id.NewSwapRequestID(),
		OwnerID:     params.OwnerID,
		RequesterID: params.RequesterID,
		BookID:      params.BookID,
		Status:      StatusPending,
		CreatedAt:   requestcontext.Now(ctx),
	}
	if err := s.store.Save(ctx, request); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to save swap request", err)
	}

	s.metrics.IncrementEntityCreated("swap_request")
	s.emit(ctx, audit.ActionSwapRequested, request.ID.String(), request.BookID.String())
	return request, nil
}

// Accept transitions a pending request to completed. All other fields are
// left unchanged, and competing requests for the same book are not touched.
func (s *Service) Accept(ctx context.Context, requestID id.SwapRequestID) (*SwapRequest, error) {
	return s.decide(ctx, requestID, (*SwapRequest).Accept, audit.ActionSwapAccepted, "completed")
}

// Reject transitions a pending request to rejected.
func (s *Service) Reject(ctx context.Context, requestID id.SwapRequestID) (*SwapRequest, error) {
	return s.decide(ctx, requestID, (*SwapRequest).Reject, audit.ActionSwapRejected, "rejected")
}

func (s *Service) decide(ctx context.Context, requestID id.SwapRequestID, transition func(*SwapRequest) error, action, outcome string) (*SwapRequest, error) {
	request, err := s.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := transition(request); err != nil {
		// Re-deciding a terminal request is a payload problem, not a
		// missing record.
		return nil, dErrors.Wrap(dErrors.CodeValidation, "swap request already decided", err)
	}
	if err := s.store.Save(ctx, request); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to save swap request", err)
	}

	s.metrics.IncrementSwapDecision(outcome)
	s.emit(ctx, action, request.ID.String(), "")
	return request, nil
}

// Update applies a partial replacement of the mutable fields. The book
// reference may move to another existing book; the status may be set to any
// valid value (the dedicated Accept/Reject operations are the guarded path).
func (s *Service) Update(ctx context.Context, requestID id.SwapRequestID, params UpdateParams) (*SwapRequest, error) {
	request, err := s.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if params.BookID != nil {
		if params.BookID.IsNil() {
			return nil, dErrors.New(dErrors.CodeValidation, "book_id is required")
		}
		ok, err := s.books.Exists(ctx, *params.BookID)
		if err != nil {
			return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to check book", err)
		}
		if !ok {
			return nil, dErrors.New(dErrors.CodeNotFound, "book not found")
		}
		request.BookID = *params.BookID
	}
	if params.Status != nil {
		if !params.Status.IsValid() {
			return nil, dErrors.New(dErrors.CodeValidation, "invalid status")
		}
		request.Status = *params.Status
	}

	if err := s.store.Save(ctx, request); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to save swap request", err)
	}

	s.emit(ctx, audit.ActionSwapUpdated, request.ID.String(), "")
	return request, nil
}

// GetByID returns the request for the identifier.
func (s *Service) GetByID(ctx context.Context, requestID id.SwapRequestID) (*SwapRequest, error) {
	request, err := s.store.FindByID(ctx, requestID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "swap request not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to load swap request", err)
	}
	return request, nil
}

// Exists reports whether the request is on record. Satisfies the checker
// ports of the modules that reference swap requests.
func (s *Service) Exists(ctx context.Context, requestID id.SwapRequestID) (bool, error) {
	_, err := s.store.FindByID(ctx, requestID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, dErrors.Wrap(dErrors.CodeInternal, "failed to load swap request", err)
	}
	return true, nil
}

// List returns every request. An empty store is NotFound by contract.
func (s *Service) List(ctx context.Context) ([]*SwapRequest, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no swap requests")
	}
	return all, nil
}

// ListByUser returns the requests the user made (as requester).
func (s *Service) ListByUser(ctx context.Context, userID id.UserID) ([]*SwapRequest, error) {
	return s.filtered(ctx, "no swap requests by user", func(r *SwapRequest) bool {
		return r.RequesterID == userID
	})
}

// ListForUser returns the requests the user received (as book owner).
func (s *Service) ListForUser(ctx context.Context, userID id.UserID) ([]*SwapRequest, error) {
	return s.filtered(ctx, "no swap requests for user", func(r *SwapRequest) bool {
		return r.OwnerID == userID
	})
}

// CountPending returns how many pending requests await the user's decision
// as book owner. Zero is a valid count.
func (s *Service) CountPending(ctx context.Context, userID id.UserID) (int, error) {
	return s.count(ctx, func(r *SwapRequest) bool {
		return r.OwnerID == userID && r.Status == StatusPending
	})
}

// CountCompleted returns how many completed swaps involve the user on
// either side. Zero is a valid count.
func (s *Service) CountCompleted(ctx context.Context, userID id.UserID) (int, error) {
	return s.count(ctx, func(r *SwapRequest) bool {
		return r.Status == StatusCompleted && (r.OwnerID == userID || r.RequesterID == userID)
	})
}

// CountByUser is the swap-count-by-user counter: completed swaps involving
// the user on either side.
func (s *Service) CountByUser(ctx context.Context, userID id.UserID) (int, error) {
	return s.CountCompleted(ctx, userID)
}

// CountCompletedTotal returns the number of completed swaps overall.
func (s *Service) CountCompletedTotal(ctx context.Context) (int, error) {
	return s.count(ctx, func(r *SwapRequest) bool {
		return r.Status == StatusCompleted
	})
}

// Delete removes a request permanently.
func (s *Service) Delete(ctx context.Context, requestID id.SwapRequestID) error {
	err := s.store.Delete(ctx, requestID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "swap request not found")
	}
	if err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "failed to delete swap request", err)
	}
	s.emit(ctx, audit.ActionSwapDeleted, requestID.String(), "")
	return nil
}

func (s *Service) ensureUser(ctx context.Context, userID id.UserID, missingMsg string) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "failed to check user", err)
	}
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, missingMsg)
	}
	return nil
}

func (s *Service) list(ctx context.Context) ([]*SwapRequest, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to list swap requests", err)
	}
	return all, nil
}

func (s *Service) filtered(ctx context.Context, emptyMsg string, keep func(*SwapRequest) bool) ([]*SwapRequest, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*SwapRequest, 0, len(all))
	for _, request := range all {
		if keep(request) {
			out = append(out, request)
		}
	}
	if len(out) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, emptyMsg)
	}
	return out, nil
}

func (s *Service) count(ctx context.Context, keep func(*SwapRequest) bool) (int, error) {
	all, err := s.list(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, request := range all {
		if keep(request) {
			n++
		}
	}
	return n, nil
}

func (s *Service) emit(ctx context.Context, action, entityID, detail string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, audit.Event{
		Action:   action,
		Entity:   "swap_request",
		EntityID: entityID,
		Detail:   detail,
	}); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", action, "error", err)
	}
}
