package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bookswap/internal/books"
	id "bookswap/pkg/domain"
	dErrors "bookswap/pkg/domain-errors"
	"bookswap/pkg/platform/httputil"
	"bookswap/pkg/requestcontext"
)

// Service defines the interface for book listing operations.
type Service interface {
	Create(ctx context.Context, params books.CreateParams) (*books.Book, error)
	Update(ctx context.Context, bookID id.BookID, params books.UpdateParams) (*books.Book, error)
	GetByID(ctx context.Context, bookID id.BookID) (*books.Book, error)
	List(ctx context.Context) ([]*books.Book, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*books.Book, error)
	ListByGenre(ctx context.Context, genre string) ([]*books.Book, error)
	Search(ctx context.Context, term string) ([]*books.Book, error)
	Recent(ctx context.Context) ([]*books.Book, error)
	Count(ctx context.Context) (int, error)
	CountByUser(ctx context.Context, userID id.UserID) (int, error)
	Delete(ctx context.Context, bookID id.BookID) error
}

// Handler wires book listing endpoints to the books service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a books handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts book endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/books", h.HandleCreate)
	r.Get("/books", h.HandleList)
	r.Get("/books/search", h.HandleSearch)
	r.Get("/books/recent", h.HandleRecent)
	r.Get("/books/count", h.HandleCount)
	r.Get("/books/genre/{genre}", h.HandleListByGenre)
	r.Get("/books/{bookID}", h.HandleGet)
	r.Put("/books/{bookID}", h.HandleUpdate)
	r.Delete("/books/{bookID}", h.HandleDelete)
	r.Get("/users/{userID}/books", h.HandleListByUser)
	r.Get("/users/{userID}/books/count", h.HandleCountByUser)
}

// HandleCreate handles POST /books.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	book, err := h.service.Create(ctx, req.Params())
	if err != nil {
		h.logger.ErrorContext(ctx, "book listing failed", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "book listed", "request_id", requestID, "book_id", book.ID)
	httputil.WriteJSON(w, http.StatusCreated, FromBook(book))
}

// HandleUpdate handles PUT /books/{bookID}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	bookID, err := id.ParseBookID(chi.URLParam(r, "bookID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	book, err := h.service.Update(ctx, bookID, req.Params())
	if err != nil {
		h.logger.ErrorContext(ctx, "book update failed", "request_id", requestID, "book_id", bookID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromBook(book))
}

// HandleGet handles GET /books/{bookID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	bookID, err := id.ParseBookID(chi.URLParam(r, "bookID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	book, err := h.service.GetByID(r.Context(), bookID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromBook(book))
}

// HandleDelete handles DELETE /books/{bookID}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	bookID, err := id.ParseBookID(chi.URLParam(r, "bookID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.Delete(ctx, bookID); err != nil {
		h.logger.ErrorContext(ctx, "book delete failed", "request_id", requestID, "book_id", bookID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleList handles GET /books.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, func(ctx context.Context) ([]*books.Book, error) {
		return h.service.List(ctx)
	})
}

// HandleSearch handles GET /books/search?term=.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	if term == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "term query parameter is required"))
		return
	}
	h.writeList(w, r, func(ctx context.Context) ([]*books.Book, error) {
		return h.service.Search(ctx, term)
	})
}

// HandleRecent handles GET /books/recent.
func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, func(ctx context.Context) ([]*books.Book, error) {
		return h.service.Recent(ctx)
	})
}

// HandleListByGenre handles GET /books/genre/{genre}.
func (h *Handler) HandleListByGenre(w http.ResponseWriter, r *http.Request) {
	genre := chi.URLParam(r, "genre")
	h.writeList(w, r, func(ctx context.Context) ([]*books.Book, error) {
		return h.service.ListByGenre(ctx, genre)
	})
}

// HandleListByUser handles GET /users/{userID}/books.
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.writeList(w, r, func(ctx context.Context) ([]*books.Book, error) {
		return h.service.ListByUser(ctx, userID)
	})
}

// HandleCount handles GET /books/count.
func (h *Handler) HandleCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Count(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CountResponse{Count: count})
}

// HandleCountByUser handles GET /users/{userID}/books/count.
func (h *Handler) HandleCountByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	count, err := h.service.CountByUser(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CountResponse{Count: count})
}

func (h *Handler) writeList(w http.ResponseWriter, r *http.Request, load func(context.Context) ([]*books.Book, error)) {
	found, err := load(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromBooks(found))
}
