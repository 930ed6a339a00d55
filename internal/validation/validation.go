package validation

import (
	"net/mail"
	"strings"
)

// Error marks a user-correctable input problem, as opposed to an internal
// failure. Its message is safe to show back to the user.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

func newError(msg string) *Error {
	return &Error{msg: msg}
}

// ValidateEmail checks format and length using Go's RFC 5322 parser.
func ValidateEmail(email string) error {
	if email == "" {
		return newError("email address is required")
	}

	if len(email) > 254 {
		return newError("email address is too long (max 254 characters)")
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return newError("invalid email address format")
	}

	return nil
}

// ValidatePassword enforces a minimum length and the bcrypt 72-byte ceiling.
func ValidatePassword(password string) error {
	if len(password) < 12 {
		return newError("password must be at least 12 characters")
	}

	// bcrypt silently truncates beyond 72 bytes
	if len(password) > 72 {
		return newError("password must not exceed 72 characters")
	}

	return nil
}

// ValidateTitle checks a group or goal title from a form submission.
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return newError("title is required")
	}

	if len(trimmed) > 200 {
		return newError("title is too long (max 200 characters)")
	}

	return nil
}
