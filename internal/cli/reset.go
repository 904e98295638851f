package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/terraincognita07/wellnest/internal/db"
	"github.com/terraincognita07/wellnest/internal/models"
	"github.com/terraincognita07/wellnest/internal/security"
	"github.com/terraincognita07/wellnest/internal/services"
)

const temporaryPasswordLength = 12

var (
	ErrResetEmailRequired = errors.New("a valid email is required")
	ErrResetUserNotFound  = errors.New("user not found")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// PasswordResetStore is the slice of the user repository the reset command needs.
type PasswordResetStore interface {
	FindByNormalizedEmail(email string) (models.User, error)
	UpdatePassword(userID uint, passwordHash string) error
}

// PasswordSource yields the new password. A nil source generates a temporary one.
type PasswordSource func() (string, error)

type ResetOptions struct {
	Prompt bool
	Stdin  *os.File
	Stdout io.Writer
	Logger *zap.Logger
}

func RunResetPasswordCommand(dbPath string, email string, options ResetOptions) error {
	if options.Stdout == nil {
		options.Stdout = os.Stdout
	}
	if options.Stdin == nil {
		options.Stdin = os.Stdin
	}

	database, err := db.OpenSQLite(dbPath, options.Logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	var source PasswordSource
	if options.Prompt {
		source = promptPasswordSource(options.Stdin, options.Stdout)
	}

	password, generated, err := ResetPassword(db.NewUserRepository(database), email, source)
	if err != nil {
		return err
	}

	fmt.Fprintln(options.Stdout, "Password reset successful")
	if generated {
		fmt.Fprintf(options.Stdout, "Temporary password: %s\n", password)
		fmt.Fprintln(options.Stdout, "Ask the user to change it from the settings page after signing in.")
	}
	return nil
}

// ResetPassword stores a new password hash for the account and reports whether
// the password was generated.
func ResetPassword(users PasswordResetStore, email string, source PasswordSource) (string, bool, error) {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if normalizedEmail == "" {
		return "", false, ErrResetEmailRequired
	}

	user, err := users.FindByNormalizedEmail(normalizedEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, fmt.Errorf("%w: %s", ErrResetUserNotFound, normalizedEmail)
	}
	if err != nil {
		return "", false, fmt.Errorf("load user: %w", err)
	}

	generated := source == nil
	if generated {
		source = generateTemporaryPassword
	}
	password, err := source()
	if err != nil {
		return "", false, err
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return "", false, err
	}

	passwordHash, err := services.HashPassword(password)
	if err != nil {
		return "", false, err
	}
	if err := users.UpdatePassword(user.ID, passwordHash); err != nil {
		return "", false, fmt.Errorf("update user password: %w", err)
	}
	return password, generated, nil
}

func promptPasswordSource(stdin *os.File, stdout io.Writer) PasswordSource {
	return func() (string, error) {
		fmt.Fprint(stdout, "New password: ")
		first, err := readPasswordNoEcho(stdin)
		fmt.Fprintln(stdout)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}

		fmt.Fprint(stdout, "Repeat password: ")
		second, err := readPasswordNoEcho(stdin)
		fmt.Fprintln(stdout)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}

		if string(first) != string(second) {
			return "", ErrPasswordMismatch
		}
		return strings.TrimSpace(string(first)), nil
	}
}

func generateTemporaryPassword() (string, error) {
	password, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return "", fmt.Errorf("generate temporary password: %w", err)
	}
	return password, nil
}
