package http

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/rmoran/stocktrack/internal/http/ban"
)

// RequireKey gates mutating routes behind the shared admin key. An
// empty adminKey is a server misconfiguration and fails every request
// it guards; a wrong or missing client key is unauthorised. When bans
// is non-nil, repeated bad keys from one address get the address
// temporarily blocked.
func RequireKey(adminKey string, bans *ban.Tracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if bans != nil && bans.IsBanned(r.Context(), ip) {
				jsonError(w, http.StatusForbidden, "Temporarily blocked")
				return
			}
			if adminKey == "" {
				jsonError(w, http.StatusInternalServerError, "ADMIN_KEY not set on server")
				return
			}
			key := r.Header.Get("x-key")
			if key == "" {
				key = r.URL.Query().Get("key")
			}
			if key != adminKey {
				if bans != nil {
					bans.Strike(r.Context(), ip, r.URL.Path)
				}
				jsonError(w, http.StatusUnauthorized, "Unauthorised")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func jsonError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
