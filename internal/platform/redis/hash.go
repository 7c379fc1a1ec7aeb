package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"bookswap/pkg/platform/sentinel"
)

// Hash adapts one redis hash to the entity store contract: an opaque map
// keyed by identifier strings supporting get, upsert, remove, and
// iterate-all-values. Values are stored JSON-encoded.
type Hash[T any] struct {
	client *goredis.Client
	key    string
}

// NewHash builds a Hash store over the given redis hash key.
func NewHash[T any](client *goredis.Client, key string) *Hash[T] {
	return &Hash[T]{client: client, key: key}
}

// Save upserts the value under id.
func (h *Hash[T]) Save(ctx context.Context, id string, value *T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s value: %w", h.key, err)
	}
	return h.client.HSet(ctx, h.key, id, raw).Err()
}

// FindByID returns the value stored under id, or sentinel.ErrNotFound.
func (h *Hash[T]) FindByID(ctx context.Context, id string) (*T, error) {
	raw, err := h.client.HGet(ctx, h.key, id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("decode %s value: %w", h.key, err)
	}
	return &value, nil
}

// Delete removes the value stored under id, or sentinel.ErrNotFound when
// the id is absent.
func (h *Hash[T]) Delete(ctx context.Context, id string) error {
	removed, err := h.client.HDel(ctx, h.key, id).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// List returns all stored values. Iteration order is unspecified; callers
// that need an order must sort.
func (h *Hash[T]) List(ctx context.Context) ([]*T, error) {
	raws, err := h.client.HVals(ctx, h.key).Result()
	if err != nil {
		return nil, err
	}
	values := make([]*T, 0, len(raws))
	for _, raw := range raws {
		var value T
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("decode %s value: %w", h.key, err)
		}
		values = append(values, &value)
	}
	return values, nil
}
