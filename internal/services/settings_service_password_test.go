package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/wellnest/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func passwordChange(current string, next string, confirm string) PasswordChange {
	return PasswordChange{CurrentPassword: current, NewPassword: next, ConfirmPassword: confirm}
}

func TestValidatePasswordChangeRejectsInvalidInput(t *testing.T) {
	service := NewSettingsService(nil)

	err := service.ValidatePasswordChange("hash", passwordChange(" ", "NewPass1", "NewPass1"))
	if !errors.Is(err, ErrSettingsPasswordChangeInvalidInput) {
		t.Fatalf("expected ErrSettingsPasswordChangeInvalidInput, got %v", err)
	}
}

func TestValidatePasswordChangeRejectsMismatch(t *testing.T) {
	service := NewSettingsService(nil)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("StrongPass1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	err = service.ValidatePasswordChange(string(passwordHash), passwordChange("StrongPass1", "NewPass1", "OtherPass1"))
	if !errors.Is(err, ErrSettingsPasswordMismatch) {
		t.Fatalf("expected ErrSettingsPasswordMismatch, got %v", err)
	}
}

func TestValidatePasswordChangeRejectsInvalidCurrentPassword(t *testing.T) {
	service := NewSettingsService(nil)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("StrongPass1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	err = service.ValidatePasswordChange(string(passwordHash), passwordChange("WrongPass1", "NewPass1", "NewPass1"))
	if !errors.Is(err, ErrSettingsInvalidCurrentPassword) {
		t.Fatalf("expected ErrSettingsInvalidCurrentPassword, got %v", err)
	}
}

func TestValidatePasswordChangeRejectsUnchangedPassword(t *testing.T) {
	service := NewSettingsService(nil)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("StrongPass1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	err = service.ValidatePasswordChange(string(passwordHash), passwordChange("StrongPass1", "StrongPass1", "StrongPass1"))
	if !errors.Is(err, ErrSettingsNewPasswordMustDiffer) {
		t.Fatalf("expected ErrSettingsNewPasswordMustDiffer, got %v", err)
	}
}

func TestValidatePasswordChangeRejectsWeakPassword(t *testing.T) {
	service := NewSettingsService(nil)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("StrongPass1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	err = service.ValidatePasswordChange(string(passwordHash), passwordChange("StrongPass1", "12345678", "12345678"))
	if !errors.Is(err, ErrSettingsWeakPassword) {
		t.Fatalf("expected ErrSettingsWeakPassword, got %v", err)
	}
}

func TestValidatePasswordChangeAcceptsValidInput(t *testing.T) {
	service := NewSettingsService(nil)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("StrongPass1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	if err := service.ValidatePasswordChange(string(passwordHash), passwordChange("StrongPass1", "EvenStronger2", "EvenStronger2")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

type stubSettingsUserRepo struct {
	user                 models.User
	updatedHash          string
	updatedName          string
	updateNameErr        error
	updatePasswordCalled bool
	updatePasswordErr    error
}

func (stub *stubSettingsUserRepo) FindByID(uint) (models.User, error) {
	return stub.user, nil
}

func (stub *stubSettingsUserRepo) UpdateName(_ uint, name string) error {
	if stub.updateNameErr != nil {
		return stub.updateNameErr
	}
	stub.updatedName = name
	return nil
}

func (stub *stubSettingsUserRepo) UpdatePassword(_ uint, passwordHash string) error {
	stub.updatePasswordCalled = true
	if stub.updatePasswordErr != nil {
		return stub.updatePasswordErr
	}
	stub.updatedHash = passwordHash
	return nil
}

func TestChangePasswordStoresNewHash(t *testing.T) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("StrongPass1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo := &stubSettingsUserRepo{user: models.User{ID: 7, PasswordHash: string(passwordHash)}}
	service := NewSettingsService(repo)

	if err := service.ChangePassword(7, passwordChange("StrongPass1", "NewStrong2", "NewStrong2")); err != nil {
		t.Fatalf("expected password change to succeed, got %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.updatedHash), []byte("NewStrong2")) != nil {
		t.Fatal("expected stored hash to match the new password")
	}

	err = service.ChangePassword(7, passwordChange("StrongPass1", "weak", "weak"))
	if !errors.Is(err, ErrSettingsWeakPassword) {
		t.Fatalf("expected ErrSettingsWeakPassword, got %v", err)
	}
}

func TestChangePasswordSkipsUpdateOnValidationError(t *testing.T) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("StrongPass1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo := &stubSettingsUserRepo{user: models.User{ID: 42, PasswordHash: string(passwordHash)}}
	service := NewSettingsService(repo)

	err = service.ChangePassword(42, passwordChange("WrongPass1", "EvenStronger2", "EvenStronger2"))
	if !errors.Is(err, ErrSettingsInvalidCurrentPassword) {
		t.Fatalf("expected ErrSettingsInvalidCurrentPassword, got %v", err)
	}
	if repo.updatePasswordCalled {
		t.Fatal("expected no UpdatePassword call on validation error")
	}
}

func TestChangePasswordWrapsUpdateError(t *testing.T) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("StrongPass1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	writeErr := errors.New("write failure")
	repo := &stubSettingsUserRepo{
		user:              models.User{ID: 42, PasswordHash: string(passwordHash)},
		updatePasswordErr: writeErr,
	}
	service := NewSettingsService(repo)

	err = service.ChangePassword(42, passwordChange("StrongPass1", "EvenStronger2", "EvenStronger2"))
	if !errors.Is(err, writeErr) {
		t.Fatalf("expected wrapped write failure, got %v", err)
	}
}

func TestUpdateDisplayNameRejectsBlank(t *testing.T) {
	repo := &stubSettingsUserRepo{}
	service := NewSettingsService(repo)

	if _, err := service.UpdateDisplayName(1, "   "); !errors.Is(err, ErrSettingsDisplayNameRequired) {
		t.Fatalf("expected ErrSettingsDisplayNameRequired, got %v", err)
	}

	name, err := service.UpdateDisplayName(1, "  Grace  ")
	if err != nil {
		t.Fatalf("expected update to succeed, got %v", err)
	}
	if name != "Grace" || repo.updatedName != "Grace" {
		t.Fatalf("expected trimmed name to be stored, got %q / %q", name, repo.updatedName)
	}
}
