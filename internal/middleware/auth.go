package middleware

import (
	"net/http"
	"strings"

	"space-catalog/shipyard/internal/auth"
	"space-catalog/shipyard/internal/common"
	"space-catalog/shipyard/internal/constants"
	"space-catalog/shipyard/internal/logging"
)

// RequireToken rejects requests without a valid write-scoped bearer token.
func RequireToken(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get(constants.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				common.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := tokens.Validate(tokenString)
			if err != nil {
				logging.Debug("Rejected bearer token",
					"request_id", GetRequestID(r.Context()),
					"error", err.Error(),
				)
				common.RespondError(w, http.StatusUnauthorized, "invalid bearer token")
				return
			}

			if !claims.CanWrite() {
				common.RespondError(w, http.StatusForbidden, "token does not grant write access")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.SetClaims(r.Context(), claims)))
		})
	}
}
