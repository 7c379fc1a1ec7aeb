package rankings

import (
	"context"
	"log/slog"
	"sort"

	"bookswap/internal/books"
	"bookswap/internal/swaps"
	"bookswap/internal/users"
	id "bookswap/pkg/domain"
	dErrors "bookswap/pkg/domain-errors"
	"bookswap/pkg/requestcontext"
)

// Service computes the monthly swapper leaderboards. The views are
// recomputed per call from store snapshots; nothing is cached.
type Service struct {
	users  UserSource
	books  BookSource
	swaps  SwapSource
	logger *slog.Logger
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService constructs a rankings Service over the entity stores.
func NewService(userSrc UserSource, bookSrc BookSource, swapSrc SwapSource, opts ...Option) *Service {
	s := &Service{users: userSrc, books: bookSrc, swaps: swapSrc, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TopSwappers returns up to five users ranked by swaps completed in the
// current calendar month. Both sides of a completed swap earn credit.
func (s *Service) TopSwappers(ctx context.Context) ([]*SwapperRanking, error) {
	return s.leaderboard(ctx)
}

// FeaturedSwappers returns the same monthly leaderboard as TopSwappers.
// Both operations share one counting rule so the two views never disagree
// about who was busiest.
func (s *Service) FeaturedSwappers(ctx context.Context) ([]*SwapperRanking, error) {
	return s.leaderboard(ctx)
}

func (s *Service) leaderboard(ctx context.Context) ([]*SwapperRanking, error) {
	requests, err := s.swaps.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to list swap requests", err)
	}

	now := requestcontext.Now(ctx)
	window := make([]*swaps.SwapRequest, 0, len(requests))
	for _, r := range requests {
		if r.Status != swaps.StatusCompleted {
			continue
		}
		if r.CreatedAt.Month() != now.Month() || r.CreatedAt.Year() != now.Year() {
			continue
		}
		window = append(window, r)
	}
	if len(window) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no completed swaps this month")
	}

	// Scan in CreatedAt order so ties break deterministically by first
	// appearance, regardless of store iteration order.
	sort.SliceStable(window, func(i, j int) bool {
		return window[i].CreatedAt.Before(window[j].CreatedAt)
	})

	counts := make(map[id.UserID]int, len(window)*2)
	order := make([]id.UserID, 0, len(window)*2)
	credit := func(userID id.UserID) {
		if _, seen := counts[userID]; !seen {
			order = append(order, userID)
		}
		counts[userID]++
	}
	for _, r := range window {
		credit(r.OwnerID)
		credit(r.RequesterID)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}

	byUser, err := s.usersByID(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := s.latestBooks(ctx)
	if err != nil {
		return nil, err
	}

	rankings := make([]*SwapperRanking, 0, len(order))
	for _, userID := range order {
		user, ok := byUser[userID]
		if !ok {
			// A swap can outlive its user; skip the orphan rather than
			// surface a hole in the leaderboard.
			s.logger.WarnContext(ctx, "ranked user no longer exists", "user_id", userID.String())
			continue
		}
		rankings = append(rankings, &SwapperRanking{
			User:           user,
			CompletedSwaps: counts[userID],
			LatestBook:     latest[userID],
		})
	}
	if len(rankings) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no completed swaps this month")
	}
	return rankings, nil
}

func (s *Service) usersByID(ctx context.Context) (map[id.UserID]*users.User, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to list users", err)
	}
	byID := make(map[id.UserID]*users.User, len(all))
	for _, u := range all {
		byID[u.ID] = u
	}
	return byID, nil
}

// latestBooks maps each user to their most recently created listing.
func (s *Service) latestBooks(ctx context.Context) (map[id.UserID]*books.Book, error) {
	all, err := s.books.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to list books", err)
	}
	latest := make(map[id.UserID]*books.Book)
	for _, b := range all {
		cur, ok := latest[b.UserID]
		if !ok || b.CreatedAt.After(cur.CreatedAt) {
			latest[b.UserID] = b
		}
	}
	return latest, nil
}
