package swaps

import (
	"context"

	id "bookswap/pkg/domain"
)

// Store is the swap request entity map: get, upsert, remove,
// iterate-all-values. Iteration order is unspecified; callers that need an
// order must sort.
type Store interface {
	Save(ctx context.Context, request *SwapRequest) error
	FindByID(ctx context.Context, requestID id.SwapRequestID) (*SwapRequest, error)
	Delete(ctx context.Context, requestID id.SwapRequestID) error
	List(ctx context.Context) ([]*SwapRequest, error)
}
