package swaps

import (
	"context"
	"sync"

	id "bookswap/pkg/domain"
	"bookswap/pkg/platform/sentinel"
)

// InMemoryStore keeps swap requests in a process-local map guarded by a
// RWMutex.
type InMemoryStore struct {
	mu       sync.RWMutex
	requests map[id.SwapRequestID]SwapRequest
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{requests: make(map[id.SwapRequestID]SwapRequest)}
}

func (s *InMemoryStore) Save(_ context.Context, request *SwapRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[request.ID] = *request
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, requestID id.SwapRequestID) (*SwapRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if request, ok := s.requests[requestID]; ok {
		return &request, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Delete(_ context.Context, requestID id.SwapRequestID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[requestID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.requests, requestID)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*SwapRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*SwapRequest, 0, len(s.requests))
	for _, request := range s.requests {
		r := request
		out = append(out, &r)
	}
	return out, nil
}
