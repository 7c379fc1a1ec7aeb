package books

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	platformredis "bookswap/internal/platform/redis"
	id "bookswap/pkg/domain"
)

const redisKey = "bookswap:books"

// RedisStore keeps books in one redis hash, JSON-encoded per field.
type RedisStore struct {
	hash *platformredis.Hash[Book]
}

func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{hash: platformredis.NewHash[Book](client, redisKey)}
}

func (s *RedisStore) Save(ctx context.Context, book *Book) error {
	return s.hash.Save(ctx, book.ID.String(), book)
}

func (s *RedisStore) FindByID(ctx context.Context, bookID id.BookID) (*Book, error) {
	return s.hash.FindByID(ctx, bookID.String())
}

func (s *RedisStore) Delete(ctx context.Context, bookID id.BookID) error {
	return s.hash.Delete(ctx, bookID.String())
}

func (s *RedisStore) List(ctx context.Context) ([]*Book, error) {
	return s.hash.List(ctx)
}
