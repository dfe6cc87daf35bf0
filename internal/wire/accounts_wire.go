package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"electronics-store/internal/adaptor"
	"electronics-store/pkg/middleware"
	"electronics-store/pkg/token"
)

func wireAccounts(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	tokens *token.Issuer,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/accounts/register", authHandler.Register)
	r.Post("/api/accounts/verify-otp", authHandler.VerifyOTP)
	r.Post("/api/accounts/login", authHandler.Login)
	r.Post("/api/accounts/token/refresh", authHandler.RefreshToken)

	// Protected routes
	r.With(middleware.AuthJWT(tokens, log)).Get("/api/accounts/me", authHandler.Profile)
}
