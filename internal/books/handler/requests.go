package handler

import (
	"strings"

	"bookswap/internal/books"
	id "bookswap/pkg/domain"
	dErrors "bookswap/pkg/domain-errors"
)

// CreateRequest is the HTTP request body for POST /books.
type CreateRequest struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`

	parsedUserID id.UserID
}

// Validate parses the owner reference and trims the text fields.
func (r *CreateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	userID, err := id.ParseUserID(strings.TrimSpace(r.UserID))
	if err != nil {
		return err
	}
	r.parsedUserID = userID
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	r.Genre = strings.TrimSpace(r.Genre)
	r.Description = strings.TrimSpace(r.Description)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	return nil
}

// Params converts the body to the service payload.
func (r *CreateRequest) Params() books.CreateParams {
	return books.CreateParams{
		UserID:      r.parsedUserID,
		Title:       r.Title,
		Author:      r.Author,
		Genre:       r.Genre,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

// UpdateRequest is the HTTP request body for PUT /books/{bookID}.
// Absent fields keep their stored value; the owner is immutable.
type UpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Title == nil && r.Author == nil && r.Genre == nil && r.Description == nil && r.ImageURL == nil {
		return dErrors.New(dErrors.CodeValidation, "at least one field must be provided")
	}
	trim(r.Title)
	trim(r.Author)
	trim(r.Genre)
	trim(r.Description)
	trim(r.ImageURL)
	return nil
}

// Params converts the body to the service payload.
func (r *UpdateRequest) Params() books.UpdateParams {
	return books.UpdateParams{
		Title:       r.Title,
		Author:      r.Author,
		Genre:       r.Genre,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
