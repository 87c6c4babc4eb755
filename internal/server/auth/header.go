package auth

import (
	"strings"

	"github.com/shazhupan/activity-portal/internal/common"
)

// FromAuthHeader extracts the raw token from an Authorization header
// value. The "Bearer " scheme label is optional; when it is absent the
// whole value is treated as the token. The prefix match is exact and
// case-sensitive, trailing space included.
func FromAuthHeader(header string) (string, error) {
	if header == "" {
		return "", common.ErrNoAuthHeader
	}

	if strings.HasPrefix(header, common.BearerPrefix) {
		return strings.TrimPrefix(header, common.BearerPrefix), nil
	}

	return header, nil
}
