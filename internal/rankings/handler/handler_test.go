package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"bookswap/internal/books"
	"bookswap/internal/rankings"
	"bookswap/internal/swaps"
	"bookswap/internal/users"
	id "bookswap/pkg/domain"
	"bookswap/pkg/requestcontext"
)

func TestLeaderboardEndpoints(t *testing.T) {
	userStore := users.NewInMemoryStore()
	bookStore := books.NewInMemoryStore()
	swapStore := swaps.NewInMemoryStore()
	service := rankings.NewService(userStore, bookStore, swapStore)

	now := time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(requestcontext.WithTime(req.Context(), now)))
		})
	})
	New(service, slog.Default()).Register(r)

	ctx := requestcontext.WithTime(context.Background(), now)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swappers/top", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with no completed swaps, got %d", rec.Code)
	}

	alice := &users.User{ID: id.NewUserID(), Name: "alice", Email: "alice@example.com", CreatedAt: now}
	bob := &users.User{ID: id.NewUserID(), Name: "bob", Email: "bob@example.com", CreatedAt: now}
	if err := userStore.Save(ctx, alice); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	if err := userStore.Save(ctx, bob); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	book := &books.Book{ID: id.NewBookID(), UserID: alice.ID, Title: "Latest", Author: "a", Genre: "g", CreatedAt: now}
	if err := bookStore.Save(ctx, book); err != nil {
		t.Fatalf("failed to seed book: %v", err)
	}
	swap := &swaps.SwapRequest{
		ID:          id.NewSwapRequestID(),
		OwnerID:     alice.ID,
		RequesterID: bob.ID,
		BookID:      book.ID,
		Status:      swaps.StatusCompleted,
		CreatedAt:   now.Add(-time.Hour),
	}
	if err := swapStore.Save(ctx, swap); err != nil {
		t.Fatalf("failed to seed swap: %v", err)
	}

	for _, path := range []string{"/swappers/top", "/swappers/featured"} {
		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, rec.Code)
		}
		var board []SwapperResponse
		if err := json.NewDecoder(rec.Body).Decode(&board); err != nil {
			t.Fatalf("failed to decode leaderboard: %v", err)
		}
		if len(board) != 2 {
			t.Fatalf("expected two swappers, got %d", len(board))
		}
		if board[0].UserID != alice.ID.String() || board[0].CompletedSwaps != 1 {
			t.Fatalf("unexpected first row: %+v", board[0])
		}
		if board[0].LatestBook == nil || board[0].LatestBook.Title != "Latest" {
			t.Fatalf("expected latest book on first row: %+v", board[0])
		}
		if board[1].LatestBook != nil {
			t.Fatalf("expected no book on second row: %+v", board[1])
		}
	}
}
