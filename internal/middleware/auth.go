package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// TokenHeader is the dedicated header alternative to a bearer token.
const TokenHeader = "X-Shortener-Token"

// WithToken rejects requests whose shared secret does not match. The secret
// is read from the dedicated header first, then from a Bearer authorization
// header. An empty configured token rejects everything.
func WithToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := requestToken(r)
			if token == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requestToken(r *http.Request) string {
	if h := r.Header.Get(TokenHeader); h != "" {
		return h
	}

	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return ""
}
