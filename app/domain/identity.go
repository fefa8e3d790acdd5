package domain

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// CleanUsername derives the Confidios identity string from a local email
// address: the address is lower-cased and the "@" replaced with "-at-",
// since Confidios identities cannot contain "@".
func CleanUsername(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if !emailPattern.MatchString(trimmed) {
		return "", NewValidationError("email", email, "invalid email format")
	}
	return strings.ToLower(strings.Replace(trimmed, "@", "-at-", 1)), nil
}
