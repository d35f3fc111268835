package services

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/cartinhas/app/models"
	"github.com/shashiranjanraj/cartinhas/pkg/auth"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// UserStore is the slice of the user repository this service needs.
type UserStore interface {
	FindByEmail(email string) (models.User, error)
	FindByID(id uint) (models.User, error)
	Create(user *models.User) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account. New accounts always get the "user"
// role; admins are promoted through seeding or direct database change.
func (s *AuthService) Register(name, email, phone, password string) (models.User, error) {
	if _, err := s.users.FindByEmail(email); err == nil {
		return models.User{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: hash,
		Role:     "user",
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login verifies credentials and issues a token carrying the user's
// stored role. An account whose profile row cannot be read fails the
// login rather than falling back to any default role.
func (s *AuthService) Login(email, password string) (string, models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, password) {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	return auth.RevokeToken(ctx, claims)
}

// Me returns the profile for an authenticated user id.
func (s *AuthService) Me(userID uint) (models.User, error) {
	return s.users.FindByID(userID)
}
