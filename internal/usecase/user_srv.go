package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/dto/response"
	"shop-backend/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	GetUser(ctx context.Context, userID string) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	SetActive(ctx context.Context, userID string, isActive bool) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		config:   config,
		log:      log,
	}
}

func (us *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	return us.GetUser(ctx, userID)
}

func (us *userService) GetUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	// Public projection: hash is never loaded here
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user")
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	// Set defaults
	if req.Page < 1 {
		req.Page = 1
	}

	users, err := us.userRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		us.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("failed to get users")
	}

	total, err := us.userRepo.CountAll(ctx)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to count users")
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.Limit(), total), nil
}

// SetActive flips the active flag. Goes through Update, which never
// touches the stored hash, so repeated saves keep it intact.
func (us *userService) SetActive(ctx context.Context, userID string, isActive bool) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user for status change",
			zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user")
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.IsActive = isActive
	user.UpdatedAt = time.Now()

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to update user status",
			zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user")
	}

	us.log.Info("User status updated",
		zap.String("user_id", userID),
		zap.Bool("is_active", isActive))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Change password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user (public view, untuk dapat email)
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to get user")
	}
	if user == nil {
		return ErrUserNotFound
	}

	// 3. Reload through the auth view to get the stored hash
	authUser, err := us.userRepo.FindByEmailWithPassword(ctx, user.Email)
	if err != nil || authUser == nil {
		us.log.Error("Failed to load credentials", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to verify password")
	}

	// 4. Verify old password
	if !authUser.HasPasswordLoaded() || !utils.CheckPasswordHash(req.OldPassword, authUser.PasswordHash) {
		us.log.Warn("Wrong old password", zap.String("user_id", userID))
		return ErrInvalidCredentials
	}

	// 5. Hash the new plaintext once and write it through the single
	// password write path
	hashed, err := utils.HashPasswordCost(req.NewPassword, us.config.Auth.BcryptCost)
	if err != nil {
		us.log.Error("Failed to hash new password", zap.Error(err))
		return err
	}

	if err := us.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		us.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to update password")
	}

	us.log.Info("Password changed", zap.String("user_id", userID))
	return nil
}

func (us *userService) DeleteUser(ctx context.Context, userID string) error {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to get user for delete", zap.Error(err), zap.String("id", userID))
		return fmt.Errorf("failed to get user")
	}
	if user == nil {
		return ErrUserNotFound
	}

	// Orders keep their weak reference; deleting a user does not
	// cascade to orders
	if err := us.userRepo.Delete(ctx, userID); err != nil {
		us.log.Error("Failed to delete user", zap.Error(err), zap.String("id", userID))
		return fmt.Errorf("failed to delete user")
	}

	us.log.Info("User deleted", zap.String("user_id", userID), zap.String("email", user.Email))
	return nil
}
