package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is a validated, normalized email address.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return Email{}, fmt.Errorf("email is required")
	}
	if len(normalized) > 255 {
		return Email{}, fmt.Errorf("email exceeds maximum length of 255 characters")
	}
	if !emailRegex.MatchString(normalized) {
		return Email{}, fmt.Errorf("invalid email format")
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
