// Package middleware holds the HTTP middleware mounted in front of the
// demand API router.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler
