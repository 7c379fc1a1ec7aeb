package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bookswap/internal/books"
	id "bookswap/pkg/domain"
)

type knownUsers map[id.UserID]bool

func (k knownUsers) Exists(_ context.Context, userID id.UserID) (bool, error) {
	return k[userID], nil
}

func newBooksRouter(t *testing.T) (chi.Router, id.UserID) {
	t.Helper()
	owner := id.NewUserID()
	service := books.NewService(books.NewInMemoryStore(), knownUsers{owner: true})
	h := New(service, slog.Default())
	r := chi.NewRouter()
	h.Register(r)
	return r, owner
}

func listBook(t *testing.T, router chi.Router, owner id.UserID, title, genre string) uuid.UUID {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"user_id":     owner.String(),
		"title":       title,
		"author":      "N. Author",
		"genre":       genre,
		"description": "well loved copy",
		"image_url":   "https://img.example.com/cover.jpg",
	})
	req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 listing book, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		BookID uuid.UUID `json:"book_id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.BookID
}

func TestListBookAndFetch(t *testing.T) {
	router, owner := newBooksRouter(t)
	bookID := listBook(t, router, owner, "The Dispossessed", "Science Fiction")

	req := httptest.NewRequest(http.MethodGet, "/books/"+bookID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching book, got %d", rec.Code)
	}
	var resp struct {
		Title  string `json:"title"`
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Title != "The Dispossessed" || resp.UserID != owner.String() {
		t.Fatalf("unexpected book payload: %+v", resp)
	}
}

func TestListBookRejectsUnknownOwner(t *testing.T) {
	router, _ := newBooksRouter(t)
	body, _ := json.Marshal(map[string]string{
		"user_id":     id.NewUserID().String(),
		"title":       "Orphan",
		"author":      "N. Author",
		"genre":       "Fiction",
		"description": "no owner on record",
		"image_url":   "https://img.example.com/cover.jpg",
	})
	req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown owner, got %d", rec.Code)
	}
}

func TestEmptyCollectionsAreNotFound(t *testing.T) {
	router, _ := newBooksRouter(t)
	for _, path := range []string{"/books", "/books/recent", "/books/search?term=x"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %s on empty store, got %d", path, rec.Code)
		}
	}

	// Counters always succeed, zero included.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/count", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 counting empty store, got %d", rec.Code)
	}
	var count CountResponse
	if err := json.NewDecoder(rec.Body).Decode(&count); err != nil {
		t.Fatalf("failed to decode count: %v", err)
	}
	if count.Count != 0 {
		t.Fatalf("expected zero count, got %d", count.Count)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	router, owner := newBooksRouter(t)
	listBook(t, router, owner, "A Wizard of Earthsea", "Fantasy")
	listBook(t, router, owner, "Dry Manual", "Reference")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/search?term=fantasy", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 searching, got %d", rec.Code)
	}
	var found []BookResponse
	if err := json.NewDecoder(rec.Body).Decode(&found); err != nil {
		t.Fatalf("failed to decode search results: %v", err)
	}
	if len(found) != 1 || found[0].Title != "A Wizard of Earthsea" {
		t.Fatalf("unexpected search results: %+v", found)
	}
}

func TestDeleteBook(t *testing.T) {
	router, owner := newBooksRouter(t)
	bookID := listBook(t, router, owner, "Short Lived", "Fiction")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/books/"+bookID.String(), nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 deleting book, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/"+bookID.String(), nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}
