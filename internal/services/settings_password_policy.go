package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrSettingsPasswordChangeInvalidInput = errors.New("settings password change invalid input")
	ErrSettingsPasswordMismatch           = errors.New("settings password mismatch")
	ErrSettingsInvalidCurrentPassword     = errors.New("settings invalid current password")
	ErrSettingsNewPasswordMustDiffer      = errors.New("settings new password must differ")
	ErrSettingsWeakPassword               = errors.New("settings weak password")
)

// PasswordChange is the settings form for replacing an account password.
type PasswordChange struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

func (change PasswordChange) trimmed() PasswordChange {
	return PasswordChange{
		CurrentPassword: strings.TrimSpace(change.CurrentPassword),
		NewPassword:     strings.TrimSpace(change.NewPassword),
		ConfirmPassword: strings.TrimSpace(change.ConfirmPassword),
	}
}

// ValidatePasswordChange checks the form against the stored hash. Checks run
// in a fixed order so the first failure is reported.
func (service *SettingsService) ValidatePasswordChange(passwordHash string, change PasswordChange) error {
	change = change.trimmed()

	switch {
	case change.CurrentPassword == "" || change.NewPassword == "" || change.ConfirmPassword == "":
		return ErrSettingsPasswordChangeInvalidInput
	case change.NewPassword != change.ConfirmPassword:
		return ErrSettingsPasswordMismatch
	case bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(change.CurrentPassword)) != nil:
		return ErrSettingsInvalidCurrentPassword
	case change.CurrentPassword == change.NewPassword:
		return ErrSettingsNewPasswordMustDiffer
	case ValidatePasswordStrength(change.NewPassword) != nil:
		return ErrSettingsWeakPassword
	}
	return nil
}
