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

	"bookswap/internal/swaps"
	id "bookswap/pkg/domain"
)

type knownUsers map[id.UserID]bool

func (k knownUsers) Exists(_ context.Context, userID id.UserID) (bool, error) {
	return k[userID], nil
}

type knownBooks map[id.BookID]bool

func (k knownBooks) Exists(_ context.Context, bookID id.BookID) (bool, error) {
	return k[bookID], nil
}

type fixture struct {
	router    chi.Router
	owner     id.UserID
	requester id.UserID
	book      id.BookID
}

func newSwapsRouter(t *testing.T) fixture {
	t.Helper()
	owner := id.NewUserID()
	requester := id.NewUserID()
	book := id.NewBookID()
	service := swaps.NewService(
		swaps.NewInMemoryStore(),
		knownUsers{owner: true, requester: true},
		knownBooks{book: true},
	)
	h := New(service, slog.Default())
	r := chi.NewRouter()
	h.Register(r)
	return fixture{router: r, owner: owner, requester: requester, book: book}
}

func (f fixture) createSwap(t *testing.T) uuid.UUID {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"owner_id":     f.owner.String(),
		"requester_id": f.requester.String(),
		"book_id":      f.book.String(),
	})
	req := httptest.NewRequest(http.MethodPost, "/swaps", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating swap, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		SwapRequestID uuid.UUID `json:"swap_request_id"`
		Status        string    `json:"status"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "pending" {
		t.Fatalf("expected pending status, got %q", resp.Status)
	}
	return resp.SwapRequestID
}

func TestCreateSwapRequest(t *testing.T) {
	f := newSwapsRouter(t)
	swapID := f.createSwap(t)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swaps/"+swapID.String(), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching swap, got %d", rec.Code)
	}
}

func TestDuplicateTripleRejected(t *testing.T) {
	f := newSwapsRouter(t)
	f.createSwap(t)

	body, _ := json.Marshal(map[string]string{
		"owner_id":     f.owner.String(),
		"requester_id": f.requester.String(),
		"book_id":      f.book.String(),
	})
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/swaps", bytes.NewReader(body)))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for duplicate triple, got %d", rec.Code)
	}
}

func TestAcceptAndRejectLifecycle(t *testing.T) {
	f := newSwapsRouter(t)
	swapID := f.createSwap(t)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/swaps/"+swapID.String()+"/accept", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 accepting swap, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp SwapRequestResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "completed" {
		t.Fatalf("expected completed status, got %q", resp.Status)
	}

	// A decided request admits no further decision.
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/swaps/"+swapID.String()+"/reject", nil))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 rejecting a completed swap, got %d", rec.Code)
	}
}

func TestDecisionOnUnknownSwapIsNotFound(t *testing.T) {
	f := newSwapsRouter(t)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/swaps/"+uuid.New().String()+"/accept", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown swap, got %d", rec.Code)
	}
}

func TestCounters(t *testing.T) {
	f := newSwapsRouter(t)

	// Counters succeed with zero before any swap exists.
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/"+f.owner.String()+"/swaps/count/pending", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 counting pending, got %d", rec.Code)
	}
	var count CountResponse
	if err := json.NewDecoder(rec.Body).Decode(&count); err != nil {
		t.Fatalf("failed to decode count: %v", err)
	}
	if count.Count != 0 {
		t.Fatalf("expected zero pending, got %d", count.Count)
	}

	swapID := f.createSwap(t)

	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/"+f.owner.String()+"/swaps/count/pending", nil))
	if err := json.NewDecoder(rec.Body).Decode(&count); err != nil {
		t.Fatalf("failed to decode count: %v", err)
	}
	if count.Count != 1 {
		t.Fatalf("expected one pending, got %d", count.Count)
	}

	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/swaps/"+swapID.String()+"/accept", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 accepting swap, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swaps/count/completed", nil))
	if err := json.NewDecoder(rec.Body).Decode(&count); err != nil {
		t.Fatalf("failed to decode count: %v", err)
	}
	if count.Count != 1 {
		t.Fatalf("expected one completed total, got %d", count.Count)
	}
}

func TestListByAndForUser(t *testing.T) {
	f := newSwapsRouter(t)
	f.createSwap(t)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/"+f.requester.String()+"/swaps/requested", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing requested swaps, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/"+f.owner.String()+"/swaps/received", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing received swaps, got %d", rec.Code)
	}

	// The requester received nothing; empty collections are 404.
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/"+f.requester.String()+"/swaps/received", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for empty received list, got %d", rec.Code)
	}
}

func TestDeleteSwapRequest(t *testing.T) {
	f := newSwapsRouter(t)
	swapID := f.createSwap(t)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/swaps/"+swapID.String(), nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 deleting swap, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swaps/"+swapID.String(), nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}
