package services

import (
	"errors"
	"unicode"
)

const (
	passwordMinRunes = 8
	// bcrypt ignores everything past 72 bytes.
	passwordMaxBytes = 72
)

// PasswordRequirements is the user-facing description of ValidatePasswordStrength.
const PasswordRequirements = "password must be 8-72 characters and include upper, lower case letters and a digit"

var ErrWeakPassword = errors.New("weak password")

type passwordClasses struct {
	upper bool
	lower bool
	digit bool
}

func classifyPassword(password string) passwordClasses {
	classes := passwordClasses{}
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			classes.upper = true
		case unicode.IsLower(char):
			classes.lower = true
		case unicode.IsDigit(char):
			classes.digit = true
		}
	}
	return classes
}

func (classes passwordClasses) complete() bool {
	return classes.upper && classes.lower && classes.digit
}

func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < passwordMinRunes || len(password) > passwordMaxBytes {
		return ErrWeakPassword
	}
	if !classifyPassword(password).complete() {
		return ErrWeakPassword
	}
	return nil
}
