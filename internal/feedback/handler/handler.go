package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bookswap/internal/feedback"
	id "bookswap/pkg/domain"
	"bookswap/pkg/platform/httputil"
	"bookswap/pkg/requestcontext"
)

// Service defines the interface for feedback operations.
type Service interface {
	Create(ctx context.Context, params feedback.CreateParams) (*feedback.Feedback, error)
	Update(ctx context.Context, params feedback.UpdateParams) (*feedback.Feedback, error)
	GetByID(ctx context.Context, feedbackID id.FeedbackID) (*feedback.Feedback, error)
	List(ctx context.Context) ([]*feedback.Feedback, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*feedback.Feedback, error)
	ListBySwapRequest(ctx context.Context, requestID id.SwapRequestID) ([]*feedback.Feedback, error)
	Delete(ctx context.Context, feedbackID id.FeedbackID) error
}

// Handler wires feedback endpoints to the feedback service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a feedback handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts feedback endpoints on the router. The update carries the
// feedback id in the payload, so it lives on the collection path.
func (h *Handler) Register(r chi.Router) {
	r.Post("/feedback", h.HandleCreate)
	r.Put("/feedback", h.HandleUpdate)
	r.Get("/feedback", h.HandleList)
	r.Get("/feedback/{feedbackID}", h.HandleGet)
	r.Delete("/feedback/{feedbackID}", h.HandleDelete)
	r.Get("/users/{userID}/feedback", h.HandleListByUser)
	r.Get("/swaps/{requestID}/feedback", h.HandleListBySwapRequest)
}

// HandleCreate handles POST /feedback.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	fb, err := h.service.Create(ctx, req.Params())
	if err != nil {
		h.logger.ErrorContext(ctx, "feedback creation failed", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "feedback left", "request_id", requestID, "feedback_id", fb.ID)
	httputil.WriteJSON(w, http.StatusCreated, FromFeedback(fb))
}

// HandleUpdate handles PUT /feedback.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UpdateRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	fb, err := h.service.Update(ctx, req.Params())
	if err != nil {
		h.logger.ErrorContext(ctx, "feedback update failed", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromFeedback(fb))
}

// HandleGet handles GET /feedback/{feedbackID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	feedbackID, err := id.ParseFeedbackID(chi.URLParam(r, "feedbackID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	fb, err := h.service.GetByID(r.Context(), feedbackID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromFeedback(fb))
}

// HandleDelete handles DELETE /feedback/{feedbackID}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	feedbackID, err := id.ParseFeedbackID(chi.URLParam(r, "feedbackID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), feedbackID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleList handles GET /feedback.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	found, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromFeedbackList(found))
}

// HandleListByUser handles GET /users/{userID}/feedback.
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	found, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromFeedbackList(found))
}

// HandleListBySwapRequest handles GET /swaps/{requestID}/feedback.
func (h *Handler) HandleListBySwapRequest(w http.ResponseWriter, r *http.Request) {
	swapID, err := id.ParseSwapRequestID(chi.URLParam(r, "requestID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	found, err := h.service.ListBySwapRequest(r.Context(), swapID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromFeedbackList(found))
}
