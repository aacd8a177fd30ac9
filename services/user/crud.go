package user

import (
	"context"
	"fmt"
	"strings"

	"chcrent/models"
	"chcrent/utils"

	"go.uber.org/zap"
)

// avatarFolder is the Cloudinary folder for profile images.
const avatarFolder = "chcrent/avatars"

// GetProfile returns the account record for the given user ID.
func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return userRec, nil
}

// UpdateProfile applies partial edits to the mutable profile fields.
func (s *DefaultUserService) UpdateProfile(userID string, updates ProfileUpdate) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	if updates.Name != nil {
		name := strings.TrimSpace(*updates.Name)
		if name == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		userRec.Name = name
	}
	if updates.Address != nil {
		userRec.Address = strings.TrimSpace(*updates.Address)
	}

	if err := s.Repo.Update(userRec); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return userRec, nil
}

// UpdateAvatar uploads a new profile image and stores its delivery URL on the
// user record.
func (s *DefaultUserService) UpdateAvatar(ctx context.Context, userID, localFilePath string) (*models.User, error) {
	if s.Storage == nil {
		return nil, fmt.Errorf("storage service is not configured")
	}

	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	publicID, err := s.Storage.UploadFile(ctx, localFilePath, avatarFolder)
	if err != nil {
		utils.GetLogger().Error("UpdateAvatar: upload failed", zap.Error(err))
		return nil, fmt.Errorf("failed to upload profile image")
	}

	url, err := s.Storage.GetDownloadURL(ctx, publicID, 0)
	if err != nil {
		utils.GetLogger().Error("UpdateAvatar: failed to resolve image URL", zap.Error(err))
		return nil, fmt.Errorf("failed to resolve profile image URL")
	}

	userRec.Image = url
	if err := s.Repo.Update(userRec); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return userRec, nil
}

// SetFCMToken records the device push token for order notifications.
func (s *DefaultUserService) SetFCMToken(userID, fcmToken string) error {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}
	userRec.FCMToken = fcmToken
	if err := s.Repo.Update(userRec); err != nil {
		return fmt.Errorf("failed to store push token: %w", err)
	}
	return nil
}
