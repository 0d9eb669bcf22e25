package adaptor

import (
	"errors"
	"strings"

	"net/http"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/usecase"
	"shop-backend/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	User  *UserHandler
	Order *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		User:  NewUserHandler(service.User, log),
		Order: NewOrderHandler(service.Order, log),
	}
}

// handleServiceError maps service errors to HTTP responses.
// Recoverable errors (duplicate identity, invalid items, not found)
// surface with their message; anything unmatched is a 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrDuplicateEmail):
		log.Warn(operation+" failed - duplicate email", zap.Error(err))
		utils.ResponseConflict(w, entity.ErrDuplicateEmail.Error())

	case errors.Is(err, entity.ErrInvalidItem):
		log.Warn(operation+" failed - invalid item", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrOrderNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrAccountDeactivated),
		errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
