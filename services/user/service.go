package user

import (
	"context"
	"fmt"
	"time"

	userRepo "wanderluxe/database/repository/user"
	"wanderluxe/models"
	"wanderluxe/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// UserService covers the minimal identity surface the booking API needs.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdatePreferences(ctx context.Context, userID string, prefs models.UserPreferences) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		Status:       models.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	if u.Status != models.UserActive {
		return nil, "", fmt.Errorf("account is not active")
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	s.Logger.Info("user authenticated", zap.String("userId", u.ID))
	return u, token, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) UpdatePreferences(ctx context.Context, userID string, prefs models.UserPreferences) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Preferences = prefs
	u.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	return u, nil
}
