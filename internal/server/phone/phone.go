// Package phone validates mainland mobile phone numbers.
package phone

import "regexp"

// Eleven digits, leading "1", second digit 3-9. Anchored on both ends:
// no partial matches and no whitespace tolerance.
var phonePattern = regexp.MustCompile(`^1[3-9][0-9]{9}$`)

// IsValid reports whether s is a well-formed mobile phone number.
func IsValid(s string) bool {
	return phonePattern.MatchString(s)
}
