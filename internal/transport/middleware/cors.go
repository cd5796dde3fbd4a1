package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sectorflow/demand-service/internal/config"
)

// exposedHeaders are readable by browser clients on cross-origin responses.
// Content-Disposition carries the attachment file name on downloads.
const exposedHeaders = "Content-Disposition, " + RequestIDHeader

// CORS answers preflight requests and decorates cross-origin responses for
// the origins listed in cfg.AllowedOrigins ("*" allows any).
//
// An OPTIONS request without Access-Control-Request-Method is not a
// preflight and is passed to the router.
func CORS(cfg config.CORSConfig) Middleware {
	origins := splitOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && origins.allows(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type originSet struct {
	any   bool
	exact map[string]struct{}
}

func splitOrigins(raw string) originSet {
	set := originSet{exact: map[string]struct{}{}}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			set.any = true
		default:
			set.exact[o] = struct{}{}
		}
	}
	return set
}

func (s originSet) allows(origin string) bool {
	if s.any {
		return true
	}
	_, ok := s.exact[origin]
	return ok
}
