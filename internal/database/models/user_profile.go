package models

import "time"

// UserRole represents the role of an authenticated user
type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleInstructor UserRole = "instructor"
	UserRoleViewer     UserRole = "viewer"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleInstructor, UserRoleViewer:
		return true
	}
	return false
}

// UserProfile stores display attributes for an authenticated user, keyed by
// the opaque subject identifier issued by the identity provider. Profiles are
// get-or-create; the role defaults to instructor on first creation.
type UserProfile struct {
	Subject     string    `json:"subject" gorm:"primary_key;size:128"`
	Email       string    `json:"email" gorm:"size:255"`
	DisplayName string    `json:"display_name" gorm:"size:200"`
	AvatarURL   string    `json:"avatar_url" gorm:"size:500"`
	Role        UserRole  `json:"role" gorm:"type:varchar(50);not null;default:'instructor'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	LastLogin   time.Time `json:"last_login"`
}

// TableName returns the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}
