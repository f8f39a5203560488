package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/boddenberg/money-bfa-go/internal/service"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserAuthMiddleware validates Bearer tokens and checks that the token
// subject owns the {userId} in the path. Without a configured secret every
// request passes through (local demo mode).
func UserAuthMiddleware(verifier *service.TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := chi.URLParam(r, "userId")
			if verifier == nil || !verifier.Enabled() {
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
				return
			}

			subject, err := verifier.Verify(r.Header.Get("Authorization"))
			if err != nil {
				logger.Warn("auth: invalid or missing token",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.Error(err),
				)
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}
			if subject != userID {
				logger.Warn("auth: token subject does not own resource",
					zap.String("path", r.URL.Path),
					zap.String("subject", subject),
				)
				writeError(w, http.StatusForbidden, "Acesso negado")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(userIDKey).(string)
	return v
}
