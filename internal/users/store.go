package users

import (
	"context"

	id "bookswap/pkg/domain"
)

// Store is the user entity map: get, upsert, remove, iterate-all-values.
// Iteration order is unspecified; callers that need an order must sort.
type Store interface {
	Save(ctx context.Context, user *User) error
	FindByID(ctx context.Context, userID id.UserID) (*User, error)
	Delete(ctx context.Context, userID id.UserID) error
	List(ctx context.Context) ([]*User, error)
}
