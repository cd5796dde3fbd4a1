package middleware

import (
	"net/http"
	"strings"

	"github.com/sectorflow/demand-service/pkg/ctxutil"
)

// AccessTokenHeader carries the caller's token. The service does not
// validate it; it is forwarded to the directory services.
const AccessTokenHeader = "X-Access-Token"

// AccessToken stores the caller's access token in the request context.
// Requests without one pass through anonymously.
func AccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(AccessTokenHeader))
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithAccessToken(r.Context(), token)))
	})
}
