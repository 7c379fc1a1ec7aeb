package feedback

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	platformredis "bookswap/internal/platform/redis"
	id "bookswap/pkg/domain"
)

const redisKey = "bookswap:feedback"

// RedisStore keeps feedback in one redis hash, JSON-encoded per field.
type RedisStore struct {
	hash *platformredis.Hash[Feedback]
}

func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{hash: platformredis.NewHash[Feedback](client, redisKey)}
}

func (s *RedisStore) Save(ctx context.Context, fb *Feedback) error {
	return s.hash.Save(ctx, fb.ID.String(), fb)
}

func (s *RedisStore) FindByID(ctx context.Context, feedbackID id.FeedbackID) (*Feedback, error) {
	return s.hash.FindByID(ctx, feedbackID.String())
}

func (s *RedisStore) Delete(ctx context.Context, feedbackID id.FeedbackID) error {
	return s.hash.Delete(ctx, feedbackID.String())
}

func (s *RedisStore) List(ctx context.Context) ([]*Feedback, error) {
	return s.hash.List(ctx)
}
