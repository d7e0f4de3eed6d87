package dto

import (
	"time"

	"github.com/taskflow-dev/taskflow-api/internal/models"
)

// UserDTO is the public view of a user. The password hash is never part of
// any projection.
type UserDTO struct {
	ID        uint64          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Name      string          `json:"name,omitempty"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserDTOs converts a slice of User models
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = ToUserDTO(u)
	}
	return dtos
}

// UserPayload is the partial-update payload for users. Absent fields stay
// untouched.
type UserPayload struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Role     *string `json:"role"`
}

// Empty reports whether no recognized field is present.
func (p *UserPayload) Empty() bool {
	return p.Username == nil && p.Email == nil && p.Name == nil && p.Role == nil
}
