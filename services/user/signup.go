package user

import (
	"fmt"
	"strings"

	"chcrent/models"
	"chcrent/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RegisterUser creates a new account. The phone number is the account key and
// the chosen center is pinned on the record so every later catalog, booking,
// and order read is scoped without re-asking.
func (s *DefaultUserService) RegisterUser(req RegistrationRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.PhoneNumber)
	if name == "" || phone == "" {
		return nil, fmt.Errorf("name and phone number are required")
	}

	existing, err := s.Repo.GetByPhone(phone)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: phone lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, DuplicatePhoneError{PhoneNumber: phone}
	}

	center, err := s.Centers.GetByID(req.CenterID)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: center lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if center == nil {
		return nil, UnknownCenterError{CenterID: req.CenterID}
	}

	newUser := &models.User{
		ID:          uuid.New().String(),
		Name:        name,
		PhoneNumber: phone,
		CenterID:    center.ID,
		CenterName:  center.Name,
		Address:     strings.TrimSpace(req.Address),
	}
	if err := s.Repo.Create(newUser); err != nil {
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	utils.GetLogger().Info("user registered",
		zap.String("userId", newUser.ID), zap.String("chcId", newUser.CenterID))
	return newUser, nil
}
