package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bookswap/internal/swaps"
	id "bookswap/pkg/domain"
	"bookswap/pkg/platform/httputil"
	"bookswap/pkg/requestcontext"
)

// Service defines the interface for swap request operations.
type Service interface {
	Create(ctx context.Context, params swaps.CreateParams) (*swaps.SwapRequest, error)
	Accept(ctx context.Context, requestID id.SwapRequestID) (*swaps.SwapRequest, error)
	Reject(ctx context.Context, requestID id.SwapRequestID) (*swaps.SwapRequest, error)
	Update(ctx context.Context, requestID id.SwapRequestID, params swaps.UpdateParams) (*swaps.SwapRequest, error)
	GetByID(ctx context.Context, requestID id.SwapRequestID) (*swaps.SwapRequest, error)
	List(ctx context.Context) ([]*swaps.SwapRequest, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*swaps.SwapRequest, error)
	ListForUser(ctx context.Context, userID id.UserID) ([]*swaps.SwapRequest, error)
	CountPending(ctx context.Context, userID id.UserID) (int, error)
	CountCompleted(ctx context.Context, userID id.UserID) (int, error)
	CountByUser(ctx context.Context, userID id.UserID) (int, error)
	CountCompletedTotal(ctx context.Context) (int, error)
	Delete(ctx context.Context, requestID id.SwapRequestID) error
}

// Handler wires swap request endpoints to the swaps service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a swaps handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts swap request endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/swaps", h.HandleCreate)
	r.Get("/swaps", h.HandleList)
	r.Get("/swaps/count/completed", h.HandleCountCompletedTotal)
	r.Get("/swaps/{requestID}", h.HandleGet)
	r.Put("/swaps/{requestID}", h.HandleUpdate)
	r.Post("/swaps/{requestID}/accept", h.HandleAccept)
	r.Post("/swaps/{requestID}/reject", h.HandleReject)
	r.Delete("/swaps/{requestID}", h.HandleDelete)
	r.Get("/users/{userID}/swaps/requested", h.HandleListByUser)
	r.Get("/users/{userID}/swaps/received", h.HandleListForUser)
	r.Get("/users/{userID}/swaps/count", h.HandleCountByUser)
	r.Get("/users/{userID}/swaps/count/pending", h.HandleCountPending)
	r.Get("/users/{userID}/swaps/count/completed", h.HandleCountCompleted)
}

// HandleCreate handles POST /swaps.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	request, err := h.service.Create(ctx, req.Params())
	if err != nil {
		h.logger.ErrorContext(ctx, "swap request creation failed", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "swap requested", "request_id", requestID, "swap_request_id", request.ID)
	httputil.WriteJSON(w, http.StatusCreated, FromSwapRequest(request))
}

// HandleAccept handles POST /swaps/{requestID}/accept.
func (h *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.service.Accept, "swap accepted")
}

// HandleReject handles POST /swaps/{requestID}/reject.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.service.Reject, "swap rejected")
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, op func(context.Context, id.SwapRequestID) (*swaps.SwapRequest, error), msg string) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	swapID, err := id.ParseSwapRequestID(chi.URLParam(r, "requestID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	request, err := op(ctx, swapID)
	if err != nil {
		h.logger.ErrorContext(ctx, "swap decision failed", "request_id", requestID, "swap_request_id", swapID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, msg, "request_id", requestID, "swap_request_id", request.ID)
	httputil.WriteJSON(w, http.StatusOK, FromSwapRequest(request))
}

// HandleUpdate handles PUT /swaps/{requestID}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	swapID, err := id.ParseSwapRequestID(chi.URLParam(r, "requestID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	request, err := h.service.Update(ctx, swapID, req.Params())
	if err != nil {
		h.logger.ErrorContext(ctx, "swap request update failed", "request_id", requestID, "swap_request_id", swapID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSwapRequest(request))
}

// HandleGet handles GET /swaps/{requestID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	swapID, err := id.ParseSwapRequestID(chi.URLParam(r, "requestID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	request, err := h.service.GetByID(r.Context(), swapID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSwapRequest(request))
}

// HandleDelete handles DELETE /swaps/{requestID}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	swapID, err := id.ParseSwapRequestID(chi.URLParam(r, "requestID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), swapID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleList handles GET /swaps.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	found, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSwapRequests(found))
}

// HandleListByUser handles GET /users/{userID}/swaps/requested.
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	h.listForParam(w, r, h.service.ListByUser)
}

// HandleListForUser handles GET /users/{userID}/swaps/received.
func (h *Handler) HandleListForUser(w http.ResponseWriter, r *http.Request) {
	h.listForParam(w, r, h.service.ListForUser)
}

func (h *Handler) listForParam(w http.ResponseWriter, r *http.Request, op func(context.Context, id.UserID) ([]*swaps.SwapRequest, error)) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	found, err := op(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSwapRequests(found))
}

// HandleCountPending handles GET /users/{userID}/swaps/count/pending.
func (h *Handler) HandleCountPending(w http.ResponseWriter, r *http.Request) {
	h.countForParam(w, r, h.service.CountPending)
}

// HandleCountCompleted handles GET /users/{userID}/swaps/count/completed.
func (h *Handler) HandleCountCompleted(w http.ResponseWriter, r *http.Request) {
	h.countForParam(w, r, h.service.CountCompleted)
}

// HandleCountByUser handles GET /users/{userID}/swaps/count.
func (h *Handler) HandleCountByUser(w http.ResponseWriter, r *http.Request) {
	h.countForParam(w, r, h.service.CountByUser)
}

func (h *Handler) countForParam(w http.ResponseWriter, r *http.Request, op func(context.Context, id.UserID) (int, error)) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	count, err := op(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CountResponse{Count: count})
}

// HandleCountCompletedTotal handles GET /swaps/count/completed.
func (h *Handler) HandleCountCompletedTotal(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountCompletedTotal(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CountResponse{Count: count})
}
