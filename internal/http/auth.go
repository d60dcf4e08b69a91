package http

import (
	"net/http"
	"strings"

	"github.com/ispnetops/ipam/internal/auth"
)

// authMiddleware enforces bearer-token authentication on the API
// routes. Probes and the swagger UI stay open; a nil authenticator
// means auth is disabled and everything passes through.
func (a *API) authMiddleware(next http.Handler) http.Handler {
	if a.Authenticator == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := bearerToken(r)
		if !ok {
			a.respond(w, r, http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
			return
		}

		principal, err := a.Authenticator.Authenticate(r.Context(), token)
		if err != nil {
			a.Logger.DebugContext(r.Context(), "token rejected", "err", err.Error())
			a.respond(w, r, http.StatusUnauthorized, ErrorResponse{Error: "invalid token"})
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}

func isPublicPath(path string) bool {
	return path == "/healthz" || path == "/readyz" || strings.HasPrefix(path, "/swagger/")
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
