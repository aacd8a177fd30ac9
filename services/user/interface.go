package user

import (
	"context"

	centerRepo "chcrent/database/repository/center"
	userRepo "chcrent/database/repository/user"
	"chcrent/models"
	"chcrent/services/storage"
)

// RegistrationRequest carries the fields collected on the signup screen.
type RegistrationRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	CenterID    string `json:"centerId" binding:"required"`
	Address     string `json:"address"`
}

// ProfileUpdate carries the mutable profile fields. Nil pointers leave the
// stored value untouched.
type ProfileUpdate struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// AuthResponse is returned on successful login verification.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService defines account, session, and profile operations.
type UserService interface {
	// RegisterUser creates a new account bound to one service center.
	RegisterUser(req RegistrationRequest) (*models.User, error)
	// RequestLoginCode initiates a phone-code login for an existing account.
	RequestLoginCode(phoneNumber string) error
	// VerifyLoginCode exchanges a valid phone code for a session token.
	VerifyLoginCode(phoneNumber, code string) (*AuthResponse, error)
	// GetProfile returns the account record.
	GetProfile(userID string) (*models.User, error)
	// UpdateProfile applies partial profile edits.
	UpdateProfile(userID string, updates ProfileUpdate) (*models.User, error)
	// UpdateAvatar uploads a new profile image and stores its URL.
	UpdateAvatar(ctx context.Context, userID, localFilePath string) (*models.User, error)
	// SetFCMToken records the device push token.
	SetFCMToken(userID, fcmToken string) error
	// RevokeUserSession invalidates the current session token.
	RevokeUserSession(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	Centers centerRepo.CenterRepository
	Storage storage.StorageService
}
