package books

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"bookswap/internal/audit"
	"bookswap/internal/platform/metrics"
	id "bookswap/pkg/domain"
	dErrors "bookswap/pkg/domain-errors"
	"bookswap/pkg/platform/sentinel"
	"bookswap/pkg/requestcontext"
	"bookswap/pkg/validate"
)

// UserChecker verifies that the owning user exists before a listing is
// created. Declared here so the books module depends on a capability, not
// on the users package wiring.
type UserChecker interface {
	Exists(ctx context.Context, userID id.UserID) (bool, error)
}

// AuditPublisher records domain events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service owns the Book records and the derived book views: search, genre
// and per-user filters, recency, and counters.
type Service struct {
	store   Store
	users   UserChecker
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

// NewService constructs a book Service.
func NewService(store Store, users UserChecker, opts ...Option) *Service {
	s := &Service{store: store, users: users, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create lists a book for an existing user.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Book, error) {
	if params.UserID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "user_id is required")
	}
	if err := validate.Required(map[string]string{
		"title":       params.Title,
		"author":      params.Author,
		"genre":       params.Genre,
		"description": params.Description,
		"image_url":   params.ImageURL,
	}); err != nil {
		return nil, err
	}

	ok, err := s.users.Exists(ctx, params.UserID)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to check user", err)
	}
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
	}

	book := &Book{
		ID:          id.NewBookID(),
		UserID:      params.UserID,
		Title:       params.Title,
		Author:      params.Author,
		Genre:       params.Genre,
		Description: params.Description,
		ImageURL:    params.ImageURL,
		CreatedAt:   requestcontext.Now(ctx),
	}
	if err := s.store.Save(ctx, book); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to save book", err)
	}

	s.metrics.IncrementEntityCreated("book")
	s.emit(ctx, audit.ActionBookListed, book.ID.String(), book.Title)
	return book, nil
}

// Update applies a partial replacement of the mutable listing fields.
// ID, UserID, and CreatedAt are immutable.
func (s *Service) Update(ctx context.Context, bookID id.BookID, params UpdateParams) (*Book, error) {
	book, err := s.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	apply := func(name string, src *string, dst *string) error {
		if src == nil {
			return nil
		}
		if strings.TrimSpace(*src) == "" {
			return dErrors.New(dErrors.CodeValidation, name+" is required")
		}
		*dst = *src
		return nil
	}
	for _, f := range []struct {
		name string
		src  *string
		dst  *string
	}{
		{"title", params.Title, &book.Title},
		{"author", params.Author, &book.Author},
		{"genre", params.Genre, &book.Genre},
		{"description", params.Description, &book.Description},
		{"image_url", params.ImageURL, &book.ImageURL},
	} {
		if err := apply(f.name, f.src, f.dst); err != nil {
			return nil, err
		}
	}

	if err := s.store.Save(ctx, book); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to save book", err)
	}

	s.emit(ctx, audit.ActionBookUpdated, book.ID.String(), "")
	return book, nil
}

// GetByID returns the listing for the identifier.
func (s *Service) GetByID(ctx context.Context, bookID id.BookID) (*Book, error) {
	book, err := s.store.FindByID(ctx, bookID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "book not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to load book", err)
	}
	return book, nil
}

// Exists reports whether the listing is on record. Satisfies the checker
// ports of the modules that reference books.
func (s *Service) Exists(ctx context.Context, bookID id.BookID) (bool, error) {
	_, err := s.store.FindByID(ctx, bookID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, dErrors.Wrap(dErrors.CodeInternal, "failed to load book", err)
	}
	return true, nil
}

// List returns every listing. An empty store is NotFound by contract.
func (s *Service) List(ctx context.Context) ([]*Book, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no books listed")
	}
	return all, nil
}

// ListByUser returns the listings owned by the user.
func (s *Service) ListByUser(ctx context.Context, userID id.UserID) ([]*Book, error) {
	return s.filtered(ctx, "no books for user", func(b *Book) bool {
		return b.UserID == userID
	})
}

// ListByGenre returns listings whose genre equals g, case-insensitively.
func (s *Service) ListByGenre(ctx context.Context, genre string) ([]*Book, error) {
	return s.filtered(ctx, "no books in genre", func(b *Book) bool {
		return strings.EqualFold(b.Genre, genre)
	})
}

// Search matches the term as a case-insensitive substring of title, author,
// or genre. An empty result is NotFound by contract.
func (s *Service) Search(ctx context.Context, term string) ([]*Book, error) {
	needle := strings.ToLower(term)
	return s.filtered(ctx, "no books match search", func(b *Book) bool {
		return strings.Contains(strings.ToLower(b.Title), needle) ||
			strings.Contains(strings.ToLower(b.Author), needle) ||
			strings.Contains(strings.ToLower(b.Genre), needle)
	})
}

// Recent returns the ten most recently created listings, newest first.
func (s *Service) Recent(ctx context.Context) ([]*Book, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no books listed")
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if len(all) > recentLimit {
		all = all[:recentLimit]
	}
	return all, nil
}

// Count returns the total number of listings. Zero is a valid count.
func (s *Service) Count(ctx context.Context) (int, error) {
	all, err := s.list(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

// CountByUser returns how many listings the user owns. Zero is a valid
// count; the user is not required to exist.
func (s *Service) CountByUser(ctx context.Context, userID id.UserID) (int, error) {
	all, err := s.list(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, book := range all {
		if book.UserID == userID {
			n++
		}
	}
	return n, nil
}

// Delete removes a listing permanently. Swap requests referencing it are
// deliberately left in place (no cascades).
func (s *Service) Delete(ctx context.Context, bookID id.BookID) error {
	err := s.store.Delete(ctx, bookID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "book not found")
	}
	if err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "failed to delete book", err)
	}
	s.emit(ctx, audit.ActionBookDeleted, bookID.String(), "")
	return nil
}

func (s *Service) list(ctx context.Context) ([]*Book, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to list books", err)
	}
	return all, nil
}

func (s *Service) filtered(ctx context.Context, emptyMsg string, keep func(*Book) bool) ([]*Book, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Book, 0, len(all))
	for _, book := range all {
		if keep(book) {
			out = append(out, book)
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
		Entity:   "book",
		EntityID: entityID,
		Detail:   detail,
	}); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", action, "error", err)
	}
}
