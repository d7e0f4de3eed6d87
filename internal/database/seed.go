package database

import (
	"errors"
	"fmt"

	"github.com/taskflow-dev/taskflow-api/internal/config"
	"github.com/taskflow-dev/taskflow-api/internal/models"
	"github.com/taskflow-dev/taskflow-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap administrator when it does not exist yet.
// On a fresh database the account receives id 1, which the user service
// treats as undeletable.
func SeedAdmin(cfg config.AdminConfig) error {
	var existing models.User
	err := DB.Where("email = ?", cfg.Email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check bootstrap admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	admin := models.User{
		Username:     cfg.Username,
		Email:        cfg.Email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed bootstrap admin: %w", err)
	}

	log := logger.Get()
	log.Info().
		Uint64("id", admin.ID).
		Str("email", admin.Email).
		Msg("bootstrap admin created")
	return nil
}
