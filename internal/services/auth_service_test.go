package services_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"empregos/internal/models"
	"empregos/internal/repositories"
	"empregos/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
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

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, bcrypt.MinCost)

	input := services.RegisterInput{
		Email:    "maria@example.com",
		Password: "password123",
		Name:     "Maria",
		Phone:    "861234567",
	}

	// Successful registration hashes the password
	mockRepo.On("GetByEmail", input.Email).Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := authService.Register(input)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// The serialized record never exposes the password hash
	body, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.NotContains(t, string(body), user.Password)
	assert.NotContains(t, string(body), "password")

	// Duplicate email fails regardless of the other fields
	mockRepo.On("GetByEmail", input.Email).Return(&models.User{ID: "1", Email: input.Email}, nil).Once()
	other := input
	other.Password = "differentpass"
	other.Name = "Someone Else"
	_, err = authService.Register(other)
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)
	mockRepo.AssertExpectations(t)

	// Missing required fields fail validation before touching the repository
	_, err = authService.Register(services.RegisterInput{Email: "x@example.com", Password: "secret99"})
	assert.ErrorIs(t, err, services.ErrValidation)

	// Infrastructure failure during the lookup is not reported as a duplicate
	mockRepo.On("GetByEmail", input.Email).Return(nil, fmt.Errorf("connection refused")).Once()
	_, err = authService.Register(input)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, services.ErrDuplicateEmail))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, bcrypt.MinCost)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "maria@example.com",
		Password: string(hashed),
		Name:     "Maria",
	}

	// Successful login
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	got, err := authService.Login(user.Email, "password123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.Login(user.Email, "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Unknown email produces the same error as a wrong password
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, unknownErr := authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, unknownErr, services.ErrInvalidCredentials)
	assert.Equal(t, services.ErrInvalidCredentials.Error(), unknownErr.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_GetUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, bcrypt.MinCost)

	user := &models.User{ID: "user-123", Email: "maria@example.com", Name: "Maria"}

	mockRepo.On("GetByID", "user-123").Return(user, nil).Once()
	got, err := authService.GetUser("user-123")
	assert.NoError(t, err)
	assert.Equal(t, user, got)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", "missing").Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.GetUser("missing")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}
