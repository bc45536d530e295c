package middleware

import (
	"context"
	"net/http"
)

// Admin session marker contract. The client sends the fixed sentinel
// value in the session header after a successful login; there is no
// server-side session state behind it.
const (
	AdminSessionHeader = "X-Admin-Session"
	AdminSessionValue  = "authenticated"
)

// AuthContextKey is the context key carrying the AuthContext
const AuthContextKey contextKey = "auth_context"

// AuthContext records the authorization decision for a request so
// handlers never re-read transport headers.
type AuthContext struct {
	Admin bool
}

// AdminSession gates admin-only endpoints on the session marker header.
// Requests without the sentinel value are rejected before any handler
// or store access runs.
func (m *Middleware) AdminSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(AdminSessionHeader) != AdminSessionValue {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Unauthorized"}`))
			return
		}

		ctx := context.WithValue(r.Context(), AuthContextKey, AuthContext{Admin: true})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAuthContext retrieves the AuthContext from the request context
func GetAuthContext(ctx context.Context) AuthContext {
	if ac, ok := ctx.Value(AuthContextKey).(AuthContext); ok {
		return ac
	}
	return AuthContext{}
}
