package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bookswap/internal/rankings"
	"bookswap/pkg/platform/httputil"
)

// Service defines the interface for leaderboard queries.
type Service interface {
	TopSwappers(ctx context.Context) ([]*rankings.SwapperRanking, error)
	FeaturedSwappers(ctx context.Context) ([]*rankings.SwapperRanking, error)
}

// Handler wires the leaderboard endpoints to the rankings service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a rankings handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the leaderboard endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/swappers/top", h.HandleTop)
	r.Get("/swappers/featured", h.HandleFeatured)
}

// HandleTop handles GET /swappers/top.
func (h *Handler) HandleTop(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.service.TopSwappers)
}

// HandleFeatured handles GET /swappers/featured.
func (h *Handler) HandleFeatured(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.service.FeaturedSwappers)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, load func(context.Context) ([]*rankings.SwapperRanking, error)) {
	board, err := load(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRankings(board))
}
