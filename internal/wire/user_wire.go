package wire

import (
	"shop-backend/internal/adaptor"
	"shop-backend/pkg/middleware"
	"shop-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT.Secret, log)
	admin := middleware.Admin(log)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Get("/api/users/me", userHandler.GetProfile)
	r.With(auth).Put("/api/users/me/password", userHandler.ChangePassword)

	// ==================== ADMIN ROUTES ====================
	r.With(auth, admin).Get("/api/users", userHandler.GetAllUsers)
	r.With(auth, admin).Get("/api/users/{id}", userHandler.GetUser)
	r.With(auth, admin).Patch("/api/users/{id}/status", userHandler.UpdateStatus)
	r.With(auth, admin).Delete("/api/users/{id}", userHandler.DeleteUser)
}
