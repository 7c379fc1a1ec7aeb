package rankings

import (
	"context"

	"bookswap/internal/books"
	"bookswap/internal/swaps"
	"bookswap/internal/users"
)

// UserSource supplies the user records the rankings are computed over.
// The entity stores satisfy these ports directly.
type UserSource interface {
	List(ctx context.Context) ([]*users.User, error)
}

// BookSource supplies the book listings used to decorate each swapper.
type BookSource interface {
	List(ctx context.Context) ([]*books.Book, error)
}

// SwapSource supplies the swap requests the counts are derived from.
type SwapSource interface {
	List(ctx context.Context) ([]*swaps.SwapRequest, error)
}
