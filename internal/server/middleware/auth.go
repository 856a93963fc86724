// Package middleware provides HTTP middleware for request authentication.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// callerKey is the context key for storing the caller identity.
const callerKey ContextKey = "caller"

// HeaderAPIKey is the request header carrying the caller's API key.
const HeaderAPIKey = "X-API-Key"

// AnonymousCaller identifies requests made without an API key.
const AnonymousCaller = "anonymous"

// WithCaller stores the caller identity (the X-API-Key header value, or
// AnonymousCaller) on the request context so handlers can meter usage
// without re-reading headers.
func WithCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := r.Header.Get(HeaderAPIKey)
		if caller == "" {
			caller = AnonymousCaller
		}
		ctx := context.WithValue(r.Context(), callerKey, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Caller returns the caller identity stored by WithCaller. Requests that
// never passed through the middleware read as AnonymousCaller.
func Caller(r *http.Request) string {
	if caller, ok := r.Context().Value(callerKey).(string); ok && caller != "" {
		return caller
	}
	return AnonymousCaller
}

// RequireAPIKey guards a route with the configured API key. When no key is
// configured the guard is a no-op, which keeps local development friction
// free.
func RequireAPIKey(configured string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if configured == "" {
			next(w, r)
			return
		}

		provided := r.Header.Get(HeaderAPIKey)
		if provided == "" {
			unauthorized(w, "Missing API key")
			return
		}
		if provided != configured {
			unauthorized(w, "Invalid API key")
			return
		}

		next(w, r)
	}
}

// unauthorized writes a 401 with the API's standard error body.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
