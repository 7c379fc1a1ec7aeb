package books

import (
	"context"
	"sync"

	id "bookswap/pkg/domain"
	"bookswap/pkg/platform/sentinel"
)

// InMemoryStore keeps books in a process-local map guarded by a RWMutex.
type InMemoryStore struct {
	mu    sync.RWMutex
	books map[id.BookID]Book
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{books: make(map[id.BookID]Book)}
}

func (s *InMemoryStore) Save(_ context.Context, book *Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books[book.ID] = *book
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, bookID id.BookID) (*Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if book, ok := s.books[bookID]; ok {
		return &book, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Delete(_ context.Context, bookID id.BookID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[bookID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.books, bookID)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Book, 0, len(s.books))
	for _, book := range s.books {
		b := book
		out = append(out, &b)
	}
	return out, nil
}
