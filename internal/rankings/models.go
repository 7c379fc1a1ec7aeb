package rankings

import (
	"bookswap/internal/books"
	"bookswap/internal/users"
)

// limit caps the leaderboards at the five busiest swappers.
const limit = 5

// SwapperRanking is one leaderboard row: the user, how many swaps they
// completed this calendar month, and their newest listing if they have one.
type SwapperRanking struct {
	User           *users.User `json:"user"`
	CompletedSwaps int         `json:"completed_swaps"`
	LatestBook     *books.Book `json:"latest_book,omitempty"`
}
