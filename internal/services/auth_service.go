package services

import (
	"errors"
	"fmt"

	"empregos/internal/models"
	"empregos/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and user lookups.
type AuthService struct {
	userRepo   repositories.UserRepository
	bcryptCost int
}

// NewAuthService creates a new AuthService. Out-of-range bcrypt costs fall
// back to the library default.
func NewAuthService(userRepo repositories.UserRepository, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Phone      string `json:"phone"`
	IsEmployer bool   `json:"isEmployer"`
	Company    string `json:"company"`
}

// Register creates a new user with a hashed password. The returned record
// never exposes the password on serialization.
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", ErrValidation)
	}

	existing, err := s.userRepo.GetByEmail(in.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:      in.Email,
		Password:   string(hashed),
		Name:       in.Name,
		Phone:      in.Phone,
		IsEmployer: in.IsEmployer,
		Company:    in.Company,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and returns the matching user. Unknown
// email and wrong password produce the same error so neither is revealed.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %s: %w", id, err)
	}
	return user, nil
}
