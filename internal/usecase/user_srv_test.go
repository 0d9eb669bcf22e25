package usecase

import (
	"context"
	"testing"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/dto/request"
	"shop-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(userRepo *MockUserRepository) UserService {
	return NewUserService(userRepo, testConfig(), zap.NewNop())
}

func TestSetActive_NeverTouchesStoredHash(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	// loaded through the public projection: no hash on the entity
	user := &entity.User{ID: "u1", Email: "a@x.com", Name: "A", Role: entity.RoleUser, IsActive: true}
	userRepo.On("FindByID", mock.Anything, "u1").Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	resp, err := svc.SetActive(context.Background(), "u1", false)

	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	// the save went through Update, which excludes the password field;
	// the dedicated password path must not have been used
	userRepo.AssertCalled(t, "Update", mock.Anything, mock.AnythingOfType("*entity.User"))
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePassword_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	oldHash, err := utils.HashPasswordCost("oldsecret", bcrypt.MinCost)
	require.NoError(t, err)

	public := &entity.User{ID: "u1", Email: "a@x.com"}
	withHash := &entity.User{ID: "u1", Email: "a@x.com", PasswordHash: oldHash}

	var newHash string
	userRepo.On("FindByID", mock.Anything, "u1").Return(public, nil)
	userRepo.On("FindByEmailWithPassword", mock.Anything, "a@x.com").Return(withHash, nil)
	userRepo.On("UpdatePassword", mock.Anything, "u1", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			newHash = args.Get(2).(string)
		}).
		Return(nil)

	err = svc.ChangePassword(context.Background(), "u1", &request.ChangePasswordRequest{
		OldPassword: "oldsecret",
		NewPassword: "newsecret",
	})

	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("newsecret", newHash))
	assert.False(t, utils.CheckPasswordHash("oldsecret", newHash))
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	oldHash, err := utils.HashPasswordCost("oldsecret", bcrypt.MinCost)
	require.NoError(t, err)

	public := &entity.User{ID: "u1", Email: "a@x.com"}
	withHash := &entity.User{ID: "u1", Email: "a@x.com", PasswordHash: oldHash}

	userRepo.On("FindByID", mock.Anything, "u1").Return(public, nil)
	userRepo.On("FindByEmailWithPassword", mock.Anything, "a@x.com").Return(withHash, nil)

	err = svc.ChangePassword(context.Background(), "u1", &request.ChangePasswordRequest{
		OldPassword: "wrongguess",
		NewPassword: "newsecret",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetUser_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	userRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.GetUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetAllUsers_ResponseNeverCarriesHash(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	// even if a hash leaked onto the entity, the public view drops it
	users := []*entity.User{
		{ID: "u1", Email: "a@x.com", PasswordHash: "$2a$10$leaked"},
	}
	userRepo.On("FindAll", mock.Anything, 10, 0).Return(users, nil)
	userRepo.On("CountAll", mock.Anything).Return(int64(1), nil)

	resp, err := svc.GetAllUsers(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "a@x.com", resp.Data[0].Email)
	// UserResponse has no hash field at all; this guards the shape
	assert.NotContains(t, toJSON(t, resp.Data[0]), "leaked")
	assert.NotContains(t, toJSON(t, resp.Data[0]), "password")
}

func TestDeleteUser_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo)

	userRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	err := svc.DeleteUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
	userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
