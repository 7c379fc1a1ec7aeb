package users

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
	"bookswap/pkg/validate"
)

// AuditPublisher records domain events without coupling the service to the
// audit transport.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service owns the User records: creation, updates, lookups, and the total
// counter. It is the only component allowed to write the user store.
type Service struct {
	store   Store
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

// NewService constructs a user Service.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a profile for the calling subject. The owner is stamped
// from the request context and never changes afterwards.
func (s *Service) Create(ctx context.Context, params CreateParams) (*User, error) {
	if err := validate.Required(map[string]string{
		"name":         params.Name,
		"email":        params.Email,
		"phone_number": params.PhoneNumber,
	}); err != nil {
		return nil, err
	}
	if err := validate.Email(params.Email); err != nil {
		return nil, err
	}
	if err := validate.Phone(params.PhoneNumber); err != nil {
		return nil, err
	}

	subject := requestcontext.Subject(ctx)
	if subject == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "caller identity is required")
	}

	if err := s.ensureEmailAvailable(ctx, params.Email, id.UserID{}); err != nil {
		return nil, err
	}

	user := &User{
		ID:          id.NewUserID(),
		Owner:       subject,
		Name:        params.Name,
		Email:       params.Email,
		PhoneNumber: params.PhoneNumber,
		CreatedAt:   requestcontext.Now(ctx),
	}
	if err := s.store.Save(ctx, user); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to save user", err)
	}

	s.metrics.IncrementEntityCreated("user")
	s.emit(ctx, audit.ActionUserCreated, user.ID.String(), user.Email)
	return user, nil
}

// Update applies a partial replacement of the mutable profile fields.
// ID, Owner, and CreatedAt are immutable.
func (s *Service) Update(ctx context.Context, userID id.UserID, params UpdateParams) (*User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if strings.TrimSpace(*params.Name) == "" {
			return nil, dErrors.New(dErrors.CodeValidation, "name is required")
		}
		user.Name = *params.Name
	}
	if params.Email != nil {
		if err := validate.Email(*params.Email); err != nil {
			return nil, err
		}
		if !strings.EqualFold(*params.Email, user.Email) {
			if err := s.ensureEmailAvailable(ctx, *params.Email, user.ID); err != nil {
				return nil, err
			}
		}
		user.Email = *params.Email
	}
	if params.PhoneNumber != nil {
		if err := validate.Phone(*params.PhoneNumber); err != nil {
			return nil, err
		}
		user.PhoneNumber = *params.PhoneNumber
	}

	if err := s.store.Save(ctx, user); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to save user", err)
	}

	s.emit(ctx, audit.ActionUserUpdated, user.ID.String(), "")
	return user, nil
}

// GetByID returns the profile for the identifier.
func (s *Service) GetByID(ctx context.Context, userID id.UserID) (*User, error) {
	user, err := s.store.FindByID(ctx, userID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to load user", err)
	}
	return user, nil
}

// Exists reports whether the user is on record. Satisfies the checker
// ports of the modules that reference users.
func (s *Service) Exists(ctx context.Context, userID id.UserID) (bool, error) {
	_, err := s.store.FindByID(ctx, userID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, dErrors.Wrap(dErrors.CodeInternal, "failed to load user", err)
	}
	return true, nil
}

// GetByOwner locates the profile whose owner equals the caller subject.
func (s *Service) GetByOwner(ctx context.Context) (*User, error) {
	subject := requestcontext.Subject(ctx)
	if subject == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "caller identity is required")
	}

	all, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to list users", err)
	}
	for _, user := range all {
		if user.Owner == subject {
			return user, nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "no profile for caller")
}

// Count returns the total number of registered users. Zero is a valid count.
func (s *Service) Count(ctx context.Context) (int, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return 0, dErrors.Wrap(dErrors.CodeInternal, "failed to list users", err)
	}
	return len(all), nil
}

// ensureEmailAvailable scans the store for a colliding email. The exclude id
// lets updates keep their own address.
func (s *Service) ensureEmailAvailable(ctx context.Context, email string, exclude id.UserID) error {
	all, err := s.store.List(ctx)
	if err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "failed to list users", err)
	}
	for _, user := range all {
		if user.ID != exclude && strings.EqualFold(user.Email, email) {
			return dErrors.New(dErrors.CodeValidation, "email is already registered")
		}
	}
	return nil
}

func (s *Service) emit(ctx context.Context, action, entityID, detail string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, audit.Event{
		Action:   action,
		Entity:   "user",
		EntityID: entityID,
		Detail:   detail,
	}); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", action, "error", err)
	}
}
