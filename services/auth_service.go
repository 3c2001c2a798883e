package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/seguro-calcio/team-manager/models"
	"github.com/seguro-calcio/team-manager/repositories"
)

type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
	ChangePassword(ctx context.Context, username, newPassword string) error
	EnsureAdminUser(ctx context.Context, username, password, email string) error
}

type CreateUserInput struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
}

type authService struct {
	userRepo repositories.UserRepository
	logger   *slog.Logger
}

func NewAuthService(userRepo repositories.UserRepository, logger *slog.Logger) AuthService {
	return &authService{userRepo: userRepo, logger: logger}
}

func (s *authService) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(creds.Username))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrAuthInvalidCredentials
	}
	return user, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *authService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	role := input.Role
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Email:        strings.TrimSpace(input.Email),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserUsernameConflict) {
			return nil, ErrAuthUsernameTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

func (s *authService) DeleteUser(ctx context.Context, username string) error {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		// The bootstrap admin must always survive.
		return fmt.Errorf("%w: admin accounts cannot be deleted", ErrForbidden)
	}
	return s.userRepo.Delete(ctx, user.ID)
}

func (s *authService) ChangePassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, user.ID, string(hashed))
}

// EnsureAdminUser creates the configured admin account on first start, or
// realigns its password and role if the row drifted.
func (s *authService) EnsureAdminUser(ctx context.Context, username, password, email string) error {
	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repositories.ErrUserNotFound) {
			return fmt.Errorf("admin bootstrap lookup: %w", err)
		}
		if _, err := s.CreateUser(ctx, CreateUserInput{
			Username: username,
			Password: password,
			Email:    email,
			Role:     models.RoleAdmin,
		}); err != nil {
			return fmt.Errorf("admin bootstrap create: %w", err)
		}
		s.logger.Info("admin user created", slog.String("username", username))
		return nil
	}

	if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)) == nil {
		return nil
	}
	if err := s.ChangePassword(ctx, existing.Username, password); err != nil {
		return fmt.Errorf("admin bootstrap password: %w", err)
	}
	s.logger.Info("admin user realigned", slog.String("username", username))
	return nil
}
