package users

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	platformredis "bookswap/internal/platform/redis"
	id "bookswap/pkg/domain"
)

const redisKey = "bookswap:users"

// RedisStore keeps users in one redis hash, JSON-encoded per field.
type RedisStore struct {
	hash *platformredis.Hash[User]
}

func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{hash: platformredis.NewHash[User](client, redisKey)}
}

func (s *RedisStore) Save(ctx context.Context, user *User) error {
	return s.hash.Save(ctx, user.ID.String(), user)
}

func (s *RedisStore) FindByID(ctx context.Context, userID id.UserID) (*User, error) {
	return s.hash.FindByID(ctx, userID.String())
}

func (s *RedisStore) Delete(ctx context.Context, userID id.UserID) error {
	return s.hash.Delete(ctx, userID.String())
}

func (s *RedisStore) List(ctx context.Context) ([]*User, error) {
	return s.hash.List(ctx)
}
