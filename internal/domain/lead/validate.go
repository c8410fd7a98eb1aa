package lead

import (
	"strings"

	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/validators"
)

const MinNameLength = 2

func ValidateName(name string) error {
	if len([]rune(strings.TrimSpace(name))) < MinNameLength {
		return httperr.ErrValidation("invalid_request", map[string]string{"name": "min"})
	}
	return nil
}

func ValidateValue(cents int64) error {
	if cents < 0 {
		return httperr.ErrValidation("invalid_request", map[string]string{"value_cents": "min"})
	}
	return nil
}

// ValidateEmail accepts nil (no email) or a well-formed address.
func ValidateEmail(email *string) error {
	if email != nil && !validators.IsEmailSyntaxValid(*email) {
		return httperr.ErrValidation("invalid_request", map[string]string{"email": "email"})
	}
	return nil
}

// CleanOptional trims v and turns blank input into nil.
func CleanOptional(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}
