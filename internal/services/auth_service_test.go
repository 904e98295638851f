package services

import (
	"errors"
	"testing"
)

func TestAuthServiceRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	repo := &userRepositoryStub{}
	events := &recordedEvents{}
	service := NewAuthService(repo, events)

	user, err := service.Register(" Ada@Example.COM ", "StrongPass1", "")
	if err != nil {
		t.Fatalf("expected registration to succeed, got %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Name != "ada" {
		t.Fatalf("expected name fallback from email, got %q", user.Name)
	}
	if user.PasswordHash == "StrongPass1" || user.PasswordHash == "" {
		t.Fatal("expected password to be hashed")
	}
	if events.registered != 1 {
		t.Fatalf("expected one registration event, got %d", events.registered)
	}

	if _, err := service.Register("ADA@example.com", "StrongPass1", "Ada"); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists for duplicate normalized email, got %v", err)
	}
}

func TestAuthServiceRegisterRejectsInvalidInput(t *testing.T) {
	service := NewAuthService(&userRepositoryStub{}, nil)

	if _, err := service.Register("", "StrongPass1", ""); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for missing email, got %v", err)
	}
	if _, err := service.Register("ada@example.com", "", ""); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for missing password, got %v", err)
	}
	if _, err := service.Register("ada@example.com", "weakpass", ""); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestAuthServiceRegisterMapsUniqueConstraintRace(t *testing.T) {
	repo := &userRepositoryStub{createErr: errors.New("UNIQUE constraint failed: users.email")}
	service := NewAuthService(repo, nil)

	if _, err := service.Register("ada@example.com", "StrongPass1", ""); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected unique violation to map to ErrEmailExists, got %v", err)
	}
}

func TestAuthServiceAuthenticate(t *testing.T) {
	repo := &userRepositoryStub{}
	service := NewAuthService(repo, nil)
	if _, err := service.Register("ada@example.com", "StrongPass1", "Ada"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := service.Authenticate(" ADA@example.com", "StrongPass1")
	if err != nil {
		t.Fatalf("expected valid login, got %v", err)
	}
	if user.Name != "Ada" {
		t.Fatalf("expected stored user, got %+v", user)
	}

	for _, testCase := range []struct {
		email    string
		password string
	}{
		{email: "ada@example.com", password: "WrongPass1"},
		{email: "missing@example.com", password: "StrongPass1"},
		{email: "not-an-email", password: "StrongPass1"},
	} {
		if _, err := service.Authenticate(testCase.email, testCase.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %+v, got %v", testCase, err)
		}
	}
}
