package books

import (
	"context"

	id "bookswap/pkg/domain"
)

// Store is the book entity map: get, upsert, remove, iterate-all-values.
// Iteration order is unspecified; callers that need an order must sort.
type Store interface {
	Save(ctx context.Context, book *Book) error
	FindByID(ctx context.Context, bookID id.BookID) (*Book, error)
	Delete(ctx context.Context, bookID id.BookID) error
	List(ctx context.Context) ([]*Book, error)
}
