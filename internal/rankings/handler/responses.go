package handler

import (
	"bookswap/internal/rankings"
)

// SwapperResponse is one leaderboard row.
type SwapperResponse struct {
	UserID         string        `json:"user_id"`
	Name           string        `json:"name"`
	CompletedSwaps int           `json:"completed_swaps"`
	LatestBook     *BookResponse `json:"latest_book,omitempty"`
}

// BookResponse is the newest listing attached to a leaderboard row.
type BookResponse struct {
	BookID string `json:"book_id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// FromRankings converts a leaderboard to its HTTP shape.
func FromRankings(board []*rankings.SwapperRanking) []*SwapperResponse {
	out := make([]*SwapperResponse, 0, len(board))
	for _, row := range board {
		resp := &SwapperResponse{
			UserID:         row.User.ID.String(),
			Name:           row.User.Name,
			CompletedSwaps: row.CompletedSwaps,
		}
		if row.LatestBook != nil {
			resp.LatestBook = &BookResponse{
				BookID: row.LatestBook.ID.String(),
				Title:  row.LatestBook.Title,
				Author: row.LatestBook.Author,
				Genre:  row.LatestBook.Genre,
			}
		}
		out = append(out, resp)
	}
	return out
}
