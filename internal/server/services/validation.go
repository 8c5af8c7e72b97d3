package services

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

const (
	minPasswordLen = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLen = 72
	maxEmailLen    = 254
)

var e164 = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validationError(field, msg string) error {
	return fmt.Errorf("%w: %s %s", common.ErrValidation, field, msg)
}

// ValidateEmail expects an already normalized address.
func ValidateEmail(email string) error {
	if email == "" || len(email) > maxEmailLen {
		return validationError("email", "must be a valid email address")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return validationError("email", "must be a valid email address")
	}
	at := strings.LastIndexByte(email, '@')
	if !strings.Contains(email[at+1:], ".") {
		return validationError("email", "must be a valid email address")
	}
	return nil
}

// ValidatePhone accepts an empty value or an E.164 number.
func ValidatePhone(phone string) error {
	if phone == "" || e164.MatchString(phone) {
		return nil
	}
	return validationError("phone", "must be in E.164 format")
}

// ValidatePassword enforces length and character-class rules.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return validationError("password", fmt.Sprintf("must be %d to %d characters", minPasswordLen, maxPasswordLen))
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return validationError("password", "must contain upper and lower case letters, a digit and a special character")
	}
	return nil
}
