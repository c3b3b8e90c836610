package middleware

import (
	"net/http"
	"strings"

	"cinelog/internal/data/repository"
	"cinelog/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession middleware untuk validasi session token
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			// Find valid session
			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			// Set context dengan user info dan token
			ctx := utils.SetUserContext(r.Context(), session.UserID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthOptional resolves the session when a token is present but never
// rejects. Routes behind it serve both anonymous and signed-in viewers.
func AuthOptional(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), parts[1])
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if session == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID)
			ctx = utils.SetTokenContext(ctx, parts[1])

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
