package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chcrent/utils"

	"go.uber.org/zap"
)

// sessionDuration is how long a login token stays valid.
const sessionDuration = 30 * 24 * time.Hour

// RequestLoginCode sends a short-lived SMS code to an existing account's
// phone number.
func (s *DefaultUserService) RequestLoginCode(phoneNumber string) error {
	phone := strings.TrimSpace(phoneNumber)
	if phone == "" {
		return fmt.Errorf("phone number is required")
	}

	existing, err := s.Repo.GetByPhone(phone)
	if err != nil {
		utils.GetLogger().Error("RequestLoginCode: phone lookup failed", zap.Error(err))
		return fmt.Errorf("login failed, please try again")
	}
	if existing == nil {
		return AccountNotFoundError{PhoneNumber: phone}
	}

	return utils.InitiateLoginOTP(phone)
}

// VerifyLoginCode exchanges a valid SMS code for a signed session token. The
// token hash is stored on the user record and mirrored in the auth cache so
// per-request checks stay off the database.
func (s *DefaultUserService) VerifyLoginCode(phoneNumber, code string) (*AuthResponse, error) {
	phone := strings.TrimSpace(phoneNumber)

	userRec, err := s.Repo.GetByPhone(phone)
	if err != nil {
		utils.GetLogger().Error("VerifyLoginCode: phone lookup failed", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}
	if userRec == nil {
		return nil, AccountNotFoundError{PhoneNumber: phone}
	}

	if err := utils.VerifyLoginOTP(phone, code); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.PhoneNumber, sessionDuration)
	if err != nil {
		utils.GetLogger().Error("VerifyLoginCode: token generation failed", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.SetTokenHash(userRec.ID, tokenHash); err != nil {
		utils.GetLogger().Error("VerifyLoginCode: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}
	userRec.TokenHash = tokenHash

	if authCache := utils.GetAuthCacheClient(); authCache != nil {
		cacheKey := utils.AuthCachePrefix + userRec.ID
		if err := authCache.Set(context.Background(), cacheKey, tokenHash, time.Hour).Err(); err != nil {
			utils.GetLogger().Warn("VerifyLoginCode: failed to prime auth cache", zap.Error(err))
		}
	}

	utils.GetLogger().Info("user logged in", zap.String("userId", userRec.ID))
	return &AuthResponse{User: userRec, Token: token}, nil
}

// RevokeUserSession clears the stored token hash and evicts the auth cache
// entry so the current token stops working immediately.
func (s *DefaultUserService) RevokeUserSession(userID string) error {
	if err := s.Repo.SetTokenHash(userID, ""); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	if authCache := utils.GetAuthCacheClient(); authCache != nil {
		cacheKey := utils.AuthCachePrefix + userID
		if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
			utils.GetLogger().Warn("RevokeUserSession: failed to evict auth cache", zap.Error(err))
		}
	}
	return nil
}
