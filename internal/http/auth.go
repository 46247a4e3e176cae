package httpapi

import (
	"context"
	"net/http"
	"strings"

	"geoconnect-backend-go/internal/services"
)

type contextKey string

const ctxIdentity contextKey = "identity"

// WithAuth rejects requests without a bearer token (401) and requests whose
// token fails verification (403), before any data access happens. On success
// the decoded identity is attached to the request context.
func WithAuth(tokens services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := tokens.Authenticate(bearerToken(r))
			if err != nil {
				if !mapServiceError(w, err) {
					WriteError(w, http.StatusForbidden, "Invalid token")
				}
				return
			}
			ctx := context.WithValue(r.Context(), ctxIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

func CurrentIdentity(r *http.Request) services.Identity {
	if value, ok := r.Context().Value(ctxIdentity).(services.Identity); ok {
		return value
	}
	return services.Identity{}
}

// RequireCapability gates a route on the capability allow-list.
func RequireCapability(cap services.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !services.Allowed(CurrentIdentity(r), cap) {
				WriteError(w, http.StatusForbidden, "Not allowed")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
