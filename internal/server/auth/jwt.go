// Package auth issues and validates the signed session tokens that assert
// an authenticated phone identity.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shazhupan/activity-portal/internal/common"
)

// Claims carries the standard registered claims plus the authenticated
// phone number. UserID duplicates the phone for clients that key on it.
type Claims struct {
	jwt.RegisteredClaims
	Phone  string `json:"phone"`
	UserID string `json:"userId"`
}

// GenerateToken builds a signed HS256 token for phone, expiring after
// validityDuration.
func GenerateToken(phone string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Phone:  phone,
		UserID: phone,
	})

	return token.SignedString(secretKey)
}

// GetPhoneFromToken parses and verifies tokenString and returns the phone
// it was issued for. Tokens past their expiry yield common.ErrTokenExpired;
// any other parse or signature failure yields common.ErrInvalidToken.
func GetPhoneFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Phone == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Phone, nil
}
