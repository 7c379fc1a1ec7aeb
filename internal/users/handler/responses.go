package handler

import (
	"time"

	"bookswap/internal/users"
)

// UserResponse is the HTTP shape of a user profile.
type UserResponse struct {
	ID          string    `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// CountResponse carries a single counter value.
type CountResponse struct {
	Count int `json:"count"`
}

// FromUser converts a domain User to its HTTP shape. The owner subject is
// internal bookkeeping and never leaves the service.
func FromUser(user *users.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID.String(),
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   user.CreatedAt,
	}
}
