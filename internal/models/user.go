// Package models contains data structures for the application's domain models.
package models

import "time"

// UserRole represents the authorization role of a user.
type UserRole string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser UserRole = "user"
	// RoleAdmin grants access to the admin surface.
	RoleAdmin UserRole = "admin"
)

// User represents a registered SkillSwap account. Users are never deleted;
// moderation flips IsBanned instead.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Role       UserRole  `gorm:"type:varchar(20);default:'user'" json:"role"`
	IsBanned   bool      `gorm:"default:false" json:"is_banned"`
	ProfilePic string    `json:"profile_pic,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
