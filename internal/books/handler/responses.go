package handler

import (
	"time"

	"bookswap/internal/books"
)

// BookResponse is the HTTP shape of a book listing.
type BookResponse struct {
	ID          string    `json:"book_id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CountResponse carries a single counter value.
type CountResponse struct {
	Count int `json:"count"`
}

// FromBook converts a domain Book to its HTTP shape.
func FromBook(book *books.Book) *BookResponse {
	return &BookResponse{
		ID:          book.ID.String(),
		UserID:      book.UserID.String(),
		Title:       book.Title,
		Author:      book.Author,
		Genre:       book.Genre,
		Description: book.Description,
		ImageURL:    book.ImageURL,
		CreatedAt:   book.CreatedAt,
	}
}

// FromBooks converts a listing slice.
func FromBooks(all []*books.Book) []*BookResponse {
	out := make([]*BookResponse, 0, len(all))
	for _, book := range all {
		out = append(out, FromBook(book))
	}
	return out
}
