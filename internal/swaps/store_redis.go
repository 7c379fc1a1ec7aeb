package swaps

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	platformredis "bookswap/internal/platform/redis"
	id "bookswap/pkg/domain"
)

const redisKey = "bookswap:swap_requests"

// RedisStore keeps swap requests in one redis hash, JSON-encoded per field.
type RedisStore struct {
	hash *platformredis.Hash[SwapRequest]
}

func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{hash: platformredis.NewHash[SwapRequest](client, redisKey)}
}

func (s *RedisStore) Save(ctx context.Context, request *SwapRequest) error {
	return s.hash.Save(ctx, request.ID.String(), request)
}

func (s *RedisStore) FindByID(ctx context.Context, requestID id.SwapRequestID) (*SwapRequest, error) {
	return s.hash.FindByID(ctx, requestID.String())
}

func (s *RedisStore) Delete(ctx context.Context, requestID id.SwapRequestID) error {
	return s.hash.Delete(ctx, requestID.String())
}

func (s *RedisStore) List(ctx context.Context) ([]*SwapRequest, error) {
	return s.hash.List(ctx)
}
