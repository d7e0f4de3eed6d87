package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/taskflow-dev/taskflow-api/internal/constants"
	"github.com/taskflow-dev/taskflow-api/internal/dto"
	"github.com/taskflow-dev/taskflow-api/internal/models"
	"github.com/taskflow-dev/taskflow-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidUsername      = errors.New("username must be between 3 and 50 characters")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrNoUserFields         = errors.New("no fields to update")
	ErrBootstrapAdmin       = errors.New("the bootstrap admin cannot be deleted")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService handles user management business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents the required information to create a user.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Name     string
	Role     string
}

// Create registers a new user with a hashed password. Any role other than
// admin is stored as employee.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if len(username) < constants.MinUsernameLength || len(username) > constants.MaxUsernameLength {
		return nil, ErrInvalidUsername
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, ErrInvalidEmail
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Name:         strings.TrimSpace(input.Name),
		Role:         normalizeRole(input.Role),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// List returns all users.
func (s *UserService) List() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListEmployees returns all users with the employee role.
func (s *UserService) ListEmployees() ([]models.User, error) {
	users, err := s.userRepo.FindByRole(models.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return users, nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// Update applies a partial update to a user. Email uniqueness is
// re-checked only when the email actually changes.
func (s *UserService) Update(id uint64, payload dto.UserPayload) (*models.User, error) {
	if payload.Empty() {
		return nil, ErrNoUserFields
	}

	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if payload.Email != nil && *payload.Email != user.Email {
		if !emailPattern.MatchString(*payload.Email) {
			return nil, ErrInvalidEmail
		}
		if _, err := s.userRepo.FindByEmail(*payload.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		user.Email = *payload.Email
	}
	if payload.Username != nil {
		username := strings.TrimSpace(*payload.Username)
		if len(username) < constants.MinUsernameLength || len(username) > constants.MaxUsernameLength {
			return nil, ErrInvalidUsername
		}
		user.Username = username
	}
	if payload.Name != nil {
		user.Name = strings.TrimSpace(*payload.Name)
	}
	if payload.Role != nil {
		user.Role = normalizeRole(*payload.Role)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete removes a user. The bootstrap admin (admin role with id 1) is
// protected by convention, not by counting remaining admins.
func (s *UserService) Delete(id uint64) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}

	if user.Role == models.RoleAdmin && user.ID == models.BootstrapAdminID {
		return ErrBootstrapAdmin
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// normalizeRole coerces any value other than admin to employee.
func normalizeRole(role string) models.UserRole {
	if models.UserRole(role) == models.RoleAdmin {
		return models.RoleAdmin
	}
	return models.RoleEmployee
}
