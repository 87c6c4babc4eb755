package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shazhupan/activity-portal/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	phone := "13800138000"

	tok, err := GenerateToken(phone, secret, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	gotPhone, err := GetPhoneFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetPhoneFromToken error: %v", err)
	}
	if gotPhone != phone {
		t.Fatalf("phone mismatch: got %q want %q", gotPhone, phone)
	}
}

func TestGetPhoneFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("13800138000", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetPhoneFromToken(tok, secret)
	if err != common.ErrTokenExpired {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

// A token with a 7-day validity window is good just before the deadline
// and rejected just after it. The parse clock is shifted instead of the
// issue clock.
func TestTokenValidityWindow(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	issued := time.Now()

	tok, err := GenerateToken("13800138000", secret, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	parseAt := func(at time.Time) error {
		claims := &Claims{}
		_, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithTimeFunc(func() time.Time { return at }))
		return err
	}

	if err := parseAt(issued.Add(6*24*time.Hour + 23*time.Hour)); err != nil {
		t.Fatalf("token should still be valid at 6d23h: %v", err)
	}

	if err := parseAt(issued.Add(7*24*time.Hour + time.Minute)); err == nil {
		t.Fatalf("token should be expired at 7d1m")
	}
}

func TestGetPhoneFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("13800138000", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetPhoneFromToken(tok, []byte("wrong-secret"))
	if err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestGetPhoneFromToken_TamperedToken(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken("13800138000", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// flip one byte in the payload section
	b := []byte(tok)
	mid := len(b) / 2
	if b[mid] == 'a' {
		b[mid] = 'b'
	} else {
		b[mid] = 'a'
	}

	_, err = GetPhoneFromToken(string(b), secret)
	if err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestGetPhoneFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := GetPhoneFromToken("not.a.jwt", []byte("k"))
	if err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestFromAuthHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer prefix stripped", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "bare token accepted", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme not stripped", header: "bearer abc", want: "bearer abc"},
		{name: "empty header rejected", header: "", wantErr: common.ErrNoAuthHeader},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromAuthHeader(tc.header)
			if err != tc.wantErr {
				t.Fatalf("error mismatch: got %v want %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("token mismatch: got %q want %q", got, tc.want)
			}
		})
	}
}
