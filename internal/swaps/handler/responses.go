package handler

import (
	"time"

	"bookswap/internal/swaps"
)

// SwapRequestResponse is the HTTP shape of a swap request.
type SwapRequestResponse struct {
	ID          string    `json:"swap_request_id"`
	OwnerID     string    `json:"owner_id"`
	RequesterID string    `json:"requester_id"`
	BookID      string    `json:"book_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CountResponse carries a single counter value.
type CountResponse struct {
	Count int `json:"count"`
}

// FromSwapRequest converts a domain SwapRequest to its HTTP shape.
func FromSwapRequest(request *swaps.SwapRequest) *SwapRequestResponse {
	return &SwapRequestResponse{
		ID:          request.ID.String(),
		OwnerID:     request.OwnerID.String(),
		RequesterID: request.RequesterID.String(),
		BookID:      request.BookID.String(),
		Status:      request.Status.String(),
		CreatedAt:   request.CreatedAt,
	}
}

// FromSwapRequests converts a request slice.
func FromSwapRequests(all []*swaps.SwapRequest) []*SwapRequestResponse {
	out := make([]*SwapRequestResponse, 0, len(all))
	for _, request := range all {
		out = append(out, FromSwapRequest(request))
	}
	return out
}
