package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bookswap/internal/users"
	id "bookswap/pkg/domain"
	"bookswap/pkg/platform/httputil"
	"bookswap/pkg/requestcontext"
)

// Service defines the interface for user profile operations.
type Service interface {
	Create(ctx context.Context, params users.CreateParams) (*users.User, error)
	Update(ctx context.Context, userID id.UserID, params users.UpdateParams) (*users.User, error)
	GetByID(ctx context.Context, userID id.UserID) (*users.User, error)
	GetByOwner(ctx context.Context) (*users.User, error)
	Count(ctx context.Context) (int, error)
}

// Handler wires user profile endpoints to the users service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a users handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts user endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/users", h.HandleCreate)
	r.Get("/users/me", h.HandleGetByOwner)
	r.Get("/users/count", h.HandleCount)
	r.Get("/users/{userID}", h.HandleGet)
	r.Put("/users/{userID}", h.HandleUpdate)
}

// HandleCreate handles POST /users.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	user, err := h.service.Create(ctx, req.Params())
	if err != nil {
		h.logger.ErrorContext(ctx, "user creation failed", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "user created", "request_id", requestID, "user_id", user.ID)
	httputil.WriteJSON(w, http.StatusCreated, FromUser(user))
}

// HandleUpdate handles PUT /users/{userID}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	user, err := h.service.Update(ctx, userID, req.Params())
	if err != nil {
		h.logger.ErrorContext(ctx, "user update failed", "request_id", requestID, "user_id", userID, "error", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromUser(user))
}

// HandleGet handles GET /users/{userID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromUser(user))
}

// HandleGetByOwner handles GET /users/me. The profile is located by the
// caller subject, no explicit parameter.
func (h *Handler) HandleGetByOwner(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetByOwner(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromUser(user))
}

// HandleCount handles GET /users/count.
func (h *Handler) HandleCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Count(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CountResponse{Count: count})
}
