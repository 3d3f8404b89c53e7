package middleware

import (
	"net/http"
	"strings"
)

const (
	corsMethods = "GET,POST,OPTIONS"
	corsHeaders = "Content-Type,Authorization,X-Shortener-Token"
)

// CORSPolicy answers cross-origin requests. With a configured allow-list
// only listed origins are echoed back; with an empty list every origin
// receives a wildcard.
type CORSPolicy struct {
	allowed []string
}

// NewCORSPolicy normalizes the allow-list: entries are trimmed, lowercased
// and stripped of a trailing slash. Empty entries are dropped.
func NewCORSPolicy(origins []string) *CORSPolicy {
	allowed := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		allowed = append(allowed, normalizeOrigin(origin))
	}
	return &CORSPolicy{allowed: allowed}
}

// AllowOrigin reports the Access-Control-Allow-Origin value for a request
// origin, matching the allow-list against the normalized form but echoing
// the origin as sent.
func (p *CORSPolicy) AllowOrigin(origin string) (string, bool) {
	if origin == "" {
		return "", false
	}

	if len(p.allowed) == 0 {
		return "*", true
	}

	normalized := normalizeOrigin(origin)
	for _, allowed := range p.allowed {
		if allowed == normalized {
			return origin, true
		}
	}

	return "", false
}

func normalizeOrigin(origin string) string {
	return strings.ToLower(strings.TrimSuffix(origin, "/"))
}

// WithCORS applies the policy to every request and short-circuits OPTIONS
// preflights with 204.
func WithCORS(policy *CORSPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allow, ok := policy.AllowOrigin(r.Header.Get("Origin")); ok {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", allow)
				h.Set("Access-Control-Allow-Methods", corsMethods)
				h.Set("Access-Control-Allow-Headers", corsHeaders)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
