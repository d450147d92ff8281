// internal/domain/checkout/validation.go
package checkout

import (
	"regexp"
	"strings"
)

// CustomerInfo holds the raw checkout form fields as entered by the shopper
type CustomerInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// ValidationResult aggregates every field failure from one validation pass
// so the caller can surface them together
type ValidationResult struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// emailPattern accepts the local@domain.tld shape: at least one non-space,
// non-@ character on each side of "@" and a dotted suffix
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the checkout form. It is pure: no state is read or
// mutated, and all failures are collected in a single pass.
//
// Phone is deliberately length-checked only (no charset restriction),
// matching what the storefront has always accepted.
func Validate(info CustomerInfo, termsAccepted bool) ValidationResult {
	fieldErrors := make(map[string]string)

	if name := strings.TrimSpace(info.FullName); len(name) < 3 {
		fieldErrors["full_name"] = "Please enter a valid name (min 3 characters)"
	}

	if email := strings.TrimSpace(info.Email); !emailPattern.MatchString(email) {
		fieldErrors["email"] = "Please enter a valid email address"
	}

	if phone := strings.TrimSpace(info.Phone); len(phone) < 9 {
		fieldErrors["phone"] = "Please enter a valid phone number"
	}

	if !termsAccepted {
		fieldErrors["terms"] = "Please agree to the terms and conditions"
	}

	if len(fieldErrors) > 0 {
		return ValidationResult{Valid: false, FieldErrors: fieldErrors}
	}
	return ValidationResult{Valid: true}
}
