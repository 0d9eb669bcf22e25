package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/dto/response"
	"shop-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := utils.NormalizeEmail(req.Email)

	// 2. Cek email sudah terdaftar
	existingUser, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, entity.ErrDuplicateEmail
	}

	// 3. Hash password - the only place plaintext from registration
	// touches the hasher, so the stored value is hashed exactly once
	hashedPassword, err := utils.HashPasswordCost(req.Password, s.config.Auth.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	// 4. Create user entity
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		Role:         entity.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 5. Save user. The unique index backs up the pre-check against
	// a concurrent register with the same email.
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return nil, entity.ErrDuplicateEmail
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 6. Issue token
	token, expiresAt, err := s.issueToken(user)
	if err != nil {
		s.log.Error("Failed to issue token after register",
			zap.Error(err), zap.String("user_id", user.ID))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))

	return response.AuthToResponse(user, token, expiresAt), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := utils.NormalizeEmail(req.Email)

	// 2. Load via the authentication view - the only read path that
	// includes the stored hash
	user, err := s.repo.User.FindByEmailWithPassword(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password. A record without a loaded hash can never
	// verify - that would be a projection bug, not a user mistake.
	if !user.HasPasswordLoaded() || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	// 4. Check if user is active
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID))
		return nil, ErrAccountDeactivated
	}

	// 5. Issue token
	token, expiresAt, err := s.issueToken(user)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))

	return response.AuthToResponse(user, token, expiresAt), nil
}

func (s *authService) issueToken(user *entity.User) (string, time.Time, error) {
	expiry := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	return utils.GenerateToken(user.ID, string(user.Role), s.config.JWT.Secret, expiry)
}
