package feedback

import (
	"context"
	"sync"

	id "bookswap/pkg/domain"
	"bookswap/pkg/platform/sentinel"
)

// InMemoryStore keeps feedback in a process-local map guarded by a RWMutex.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[id.FeedbackID]Feedback
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[id.FeedbackID]Feedback)}
}

func (s *InMemoryStore) Save(_ context.Context, fb *Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[fb.ID] = *fb
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, feedbackID id.FeedbackID) (*Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if fb, ok := s.records[feedbackID]; ok {
		return &fb, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Delete(_ context.Context, feedbackID id.FeedbackID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[feedbackID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.records, feedbackID)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Feedback, 0, len(s.records))
	for _, fb := range s.records {
		f := fb
		out = append(out, &f)
	}
	return out, nil
}
