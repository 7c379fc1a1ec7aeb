// Package validate holds the payload format checks shared by the entity
// services. All checks are pure; uniqueness rules that need store reads
// live in the services.
package validate

import (
	"regexp"
	"sort"
	"strings"

	dErrors "bookswap/pkg/domain-errors"
)

var (
	// emailRX accepts the standard local@domain.tld shape.
	emailRX = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// phoneRX accepts exactly ten decimal digits.
	phoneRX = regexp.MustCompile(`^[0-9]{10}$`)
)

// Email checks the local@domain.tld shape.
func Email(s string) error {
	if !emailRX.MatchString(s) {
		return dErrors.New(dErrors.CodeValidation, "email must be a valid address")
	}
	return nil
}

// Phone checks for exactly ten decimal digits.
func Phone(s string) error {
	if !phoneRX.MatchString(s) {
		return dErrors.New(dErrors.CodeValidation, "phone number must be exactly 10 digits")
	}
	return nil
}

// Required checks that every named field is non-empty after trimming.
// The error names the first offending field.
func Required(fields map[string]string) error {
	// Deterministic order keeps error messages stable in tests.
	for _, name := range sortedKeys(fields) {
		if strings.TrimSpace(fields[name]) == "" {
			return dErrors.New(dErrors.CodeValidation, name+" is required")
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
