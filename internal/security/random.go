package security

import (
	"crypto/rand"
	"errors"
	"io"
)

const (
	// AlphanumericAlphabet is used for signing secrets.
	AlphanumericAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// ReadableAlphabet drops characters that are easy to misread (0/O, 1/l/I).
	ReadableAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
)

var passwordClassAlphabets = []string{
	"ABCDEFGHJKLMNPQRSTUVWXYZ",
	"abcdefghijkmnopqrstuvwxyz",
	"23456789",
}

var (
	errNegativeLength   = errors.New("length must be non-negative")
	errAlphabetSize     = errors.New("alphabet must hold between 1 and 256 characters")
	errPasswordTooShort = errors.New("temporary password is shorter than its required character classes")
)

var randomSource io.Reader = rand.Reader

// randomIndex returns a uniform value in [0, n) for n <= 256 using rejection
// sampling over single bytes.
func randomIndex(n int) (int, error) {
	limit := 256 - 256%n
	buffer := make([]byte, 1)
	for {
		if _, err := io.ReadFull(randomSource, buffer); err != nil {
			return 0, err
		}
		if value := int(buffer[0]); value < limit {
			return value % n, nil
		}
	}
}

// RandomString draws length characters uniformly from alphabet.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if len(alphabet) == 0 || len(alphabet) > 256 {
		return "", errAlphabetSize
	}

	value := make([]byte, length)
	for index := range value {
		position, err := randomIndex(len(alphabet))
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position]
	}
	return string(value), nil
}

// TemporaryPassword returns a readable password holding at least one upper
// case letter, one lower case letter and one digit.
func TemporaryPassword(length int) (string, error) {
	if length < len(passwordClassAlphabets) {
		return "", errPasswordTooShort
	}

	chars := make([]byte, 0, length)
	for _, class := range passwordClassAlphabets {
		picked, err := RandomString(1, class)
		if err != nil {
			return "", err
		}
		chars = append(chars, picked[0])
	}
	rest, err := RandomString(length-len(chars), ReadableAlphabet)
	if err != nil {
		return "", err
	}
	chars = append(chars, rest...)

	for index := len(chars) - 1; index > 0; index-- {
		swap, err := randomIndex(index + 1)
		if err != nil {
			return "", err
		}
		chars[index], chars[swap] = chars[swap], chars[index]
	}
	return string(chars), nil
}
