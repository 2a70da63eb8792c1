package services_test

import (
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	os.Exit(m.Run())
}

func adminAccount(t *testing.T) *models.User {
	t.Helper()
	user := &models.User{
		Base:  models.Base{ID: "user-1"},
		Name:  "Store Admin",
		Email: "admin@example.com",
		Role:  models.RoleSuperAdmin,
	}
	if err := user.SetPassword("password123"); err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return user
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	mockRepo.On("GetByEmail", "new@example.com").Return(nil, errors.New("not found")).Once()
	mockRepo.On("Create", mock.Anything).Return(nil).Once()

	user, err := authService.Register("New User", "new@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, user.CheckPassword("password123"))
	mockRepo.AssertExpectations(t)

	// A taken email is rejected before any write.
	mockRepo.On("GetByEmail", "taken@example.com").Return(&models.User{Email: "taken@example.com"}, nil).Once()
	_, err = authService.Register("Other", "taken@example.com", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")
	admin := adminAccount(t)

	mockRepo.On("GetByEmail", "admin@example.com").Return(admin, nil)

	token, user, err := authService.Login("admin@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-1", user.ID)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, models.RoleSuperAdmin, claims.Role)
}

func TestAuthService_LoginFailures(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")
	admin := adminAccount(t)

	mockRepo.On("GetByEmail", "admin@example.com").Return(admin, nil)
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, errors.New("not found"))

	_, _, err := authService.Login("admin@example.com", "wrong-password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown accounts fail with the same error as bad passwords.
	_, _, err = authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_ValidateTokenRejections(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), "test_jwt_secret")

	_, err := authService.ValidateToken("not-a-jwt")
	assert.Error(t, err)

	// A token signed with a different secret fails verification.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, services.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := foreign.SignedString([]byte("other_secret"))
	assert.NoError(t, err)
	_, err = authService.ValidateToken(signed)
	assert.Error(t, err)

	// An expired token is rejected even with the right secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, services.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err = expired.SignedString([]byte("test_jwt_secret"))
	assert.NoError(t, err)
	_, err = authService.ValidateToken(signed)
	assert.Error(t, err)
}
