package usecase

import (
	"errors"

	"shop-backend/internal/data/repository"
	"shop-backend/pkg/utils"

	"go.uber.org/zap"
)

// Service-level errors, matched by handlers with errors.Is.
// A wrong password is ErrInvalidCredentials, never a hash-engine error.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrUserNotFound       = errors.New("user not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrForbidden          = errors.New("forbidden")
)

type Service struct {
	Auth  AuthService
	User  UserService
	Order OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, config, log),
		User:  NewUserService(repo.User, config, log),
		Order: NewOrderService(repo, log),
	}
}
