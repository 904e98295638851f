package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/wellnest/internal/models"
)

var ErrSettingsDisplayNameRequired = errors.New("settings display name required")

type SettingsUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateName(userID uint, name string) error
	UpdatePassword(userID uint, passwordHash string) error
}

type SettingsService struct {
	users SettingsUserRepository
}

func NewSettingsService(users SettingsUserRepository) *SettingsService {
	return &SettingsService{users: users}
}

func (service *SettingsService) UpdateDisplayName(userID uint, raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrSettingsDisplayNameRequired
	}
	name = NormalizeDisplayName(name, "")
	if err := service.users.UpdateName(userID, name); err != nil {
		return "", fmt.Errorf("update display name: %w", err)
	}
	return name, nil
}

func (service *SettingsService) ChangePassword(userID uint, change PasswordChange) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if err := service.ValidatePasswordChange(user.PasswordHash, change); err != nil {
		return err
	}

	passwordHash, err := HashPassword(change.trimmed().NewPassword)
	if err != nil {
		return err
	}
	if err := service.users.UpdatePassword(userID, passwordHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
