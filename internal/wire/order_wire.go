package wire

import (
	"shop-backend/internal/adaptor"
	"shop-backend/pkg/middleware"
	"shop-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT.Secret, log)
	admin := middleware.Admin(log)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/api/orders", orderHandler.CreateOrder)
	r.With(auth).Get("/api/orders", orderHandler.GetMyOrders)
	r.With(auth).Get("/api/orders/{id}", orderHandler.GetOrder)

	// ==================== ADMIN ROUTES ====================
	r.With(auth, admin).Get("/api/admin/orders", orderHandler.GetAllOrders)
	r.With(auth, admin).Patch("/api/orders/{id}/status", orderHandler.UpdateStatus)
}
