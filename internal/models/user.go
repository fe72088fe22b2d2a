package models

import "time"

type UserRole string

const (
	RoleJobSeeker   UserRole = "JOB_SEEKER"
	RoleJobProvider UserRole = "JOB_PROVIDER"
)

func (r UserRole) Valid() bool {
	return r == RoleJobSeeker || r == RoleJobProvider
}

// User is the identity record. Role is fixed at registration and selects which
// profile table the user owns.
type User struct {
	ID       string   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name     string   `gorm:"column:name;type:text" json:"name"`
	Email    string   `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	Password string   `gorm:"column:password;type:text" json:"-"`
	Role     UserRole `gorm:"column:role;type:text" json:"role"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (User) TableName() string { return "users" }
