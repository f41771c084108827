package httpapi

import (
	"net/http"
	"runtime/debug"
	"strings"

	"livecontent/internal/common"
	"livecontent/internal/logging"
	"livecontent/internal/server/auth"
)

// recovery turns panics into 500 responses instead of dropped connections.
func recovery(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error(r.Context(), "panic recovered",
						"error", err,
						"path", r.URL.Path,
						"method", r.Method,
						"stack", string(debug.Stack()),
					)
					respondError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// authorize verifies the bearer token on an editing request. An empty signing
// secret is a server misconfiguration, never a reason to let the request
// through.
func (s *Server) authorize(r *http.Request) error {
	token := bearerToken(r)
	if token == "" {
		return common.ErrUnauthorized
	}
	if s.config.JWTSecret == "" {
		return common.ErrServerMisconfigured
	}
	if _, err := auth.VerifyToken(token, []byte(s.config.JWTSecret)); err != nil {
		return common.ErrUnauthorized
	}
	return nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
