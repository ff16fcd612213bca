package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spotifaux/spotifaux-go/internal/crypto"
	"github.com/spotifaux/spotifaux-go/internal/model"
	"github.com/spotifaux/spotifaux-go/internal/repository"
)

const MinPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

// AuthService handles signup and login.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// TokenExpiry returns the lifetime of issued tokens.
func (s *AuthService) TokenExpiry() time.Duration {
	return s.jwtExpiry
}

// Signup creates a new user account and returns an auth token.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return model.AuthResponse{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.AuthResponse{}, err
	}
	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return model.AuthResponse{}, ErrPasswordTooShort
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         model.DefaultRole,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}
	slog.Info("user signup", "email", user.Email, "user_id", user.ID)

	return s.authResponse(user)
}

// Login authenticates a user and returns an auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			slog.Info("failed login", "email", req.Email)
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		slog.Info("failed login", "email", req.Email)
		return model.AuthResponse{}, ErrInvalidCredentials
	}
	slog.Info("user logged in", "user_id", user.ID)

	return s.authResponse(user)
}

func (s *AuthService) authResponse(user *model.User) (model.AuthResponse, error) {
	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Public(),
	}, nil
}
