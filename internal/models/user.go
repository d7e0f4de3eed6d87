package models

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

// BootstrapAdminID is the id of the seeded administrator account, which is
// protected from deletion.
const BootstrapAdminID uint64 = 1

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Name         string    `gorm:"type:varchar(100)" json:"name"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'employee'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	CreatedProjects []Project `gorm:"foreignKey:CreatedBy" json:"-"`
	AssignedTasks   []Task    `gorm:"foreignKey:AssignedTo" json:"-"`
}

// IsValidRole reports whether s is one of the two known roles.
func IsValidRole(s string) bool {
	return UserRole(s) == RoleAdmin || UserRole(s) == RoleEmployee
}
