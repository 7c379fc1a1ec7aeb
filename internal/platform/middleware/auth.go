package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bookswap/pkg/requestcontext"
)

// SubjectValidator turns a bearer token into the opaque caller subject. The
// domain never sees the token itself; identity issuance and verification
// stay outside the record service.
type SubjectValidator interface {
	ValidateToken(tokenString string) (string, error)
}

// RequireAuth extracts the caller subject from the Authorization header and
// stores it in the request context. Requests without a valid bearer token
// are rejected before any handler runs.
func RequireAuth(validator SubjectValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const bearerPrefix = "Bearer "
			token, ok := strings.CutPrefix(authHeader, bearerPrefix)
			if !ok || token == "" {
				writeUnauthorized(w, "Missing bearer token")
				return
			}

			subject, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(r.Context(), "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(r.Context()),
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := requestcontext.WithSubject(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, desc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + desc + `"}`))
}
