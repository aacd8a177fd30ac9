package userRepo

import (
	"chcrent/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByPhone retrieves a user by phone number.
	// Returns (nil, nil) when no such user exists.
	GetByPhone(phoneNumber string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// SetTokenHash stores the hash of the user's current session token;
	// an empty hash revokes the session.
	SetTokenHash(id, tokenHash string) error
}
