package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/shazhupan/activity-portal/internal/common"
	"github.com/shazhupan/activity-portal/internal/server/auth"
)

type ctxKey string

const phoneKey ctxKey = "phone"

// requireAuth validates the bearer credential and stores the
// authenticated phone in the request context. Expired tokens and
// invalid ones get distinct messages but the same 401 status.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.FromAuthHeader(r.Header.Get(common.AuthHeaderName))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "no token provided, please log in")
			return
		}

		phone, err := auth.GetPhoneFromToken(token, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				writeError(w, http.StatusUnauthorized, "token expired, please log in again")
			} else {
				writeError(w, http.StatusUnauthorized, "invalid token, please log in again")
			}
			return
		}

		ctx := context.WithValue(r.Context(), phoneKey, phone)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// phoneFromContext returns the phone stored by requireAuth, or "" when
// the request never passed through it.
func phoneFromContext(ctx context.Context) string {
	phone, _ := ctx.Value(phoneKey).(string)
	return phone
}
