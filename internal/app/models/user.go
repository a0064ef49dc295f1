package models

import "time"

// UserRole represents the role attached to an authenticated principal
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleFaculty UserRole = "faculty"
	RoleAdmin   UserRole = "admin"
)

var validUserRoles = map[UserRole]bool{
	RoleStudent: true,
	RoleFaculty: true,
	RoleAdmin:   true,
}

// IsValid reports whether the role is known
func (r UserRole) IsValid() bool {
	return validUserRoles[r]
}

// User defines the user model based on the 'users' table
type User struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	Email      string    `json:"email" db:"email" example:"student@campus.edu"`
	Password   string    `json:"-" db:"password"` // hashed, excluded from JSON
	Name       string    `json:"name" db:"name" example:"Priya Sharma"`
	Role       UserRole  `json:"role" db:"role" example:"student"`
	Department *string   `json:"department,omitempty" db:"department"`
	IsActive   bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
