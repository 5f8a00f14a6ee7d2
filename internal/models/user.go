// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User types. A tattooer is a service provider eligible to hold a Profile
// and receive Reviews; clients can only author them.
const (
	UserTypeClient   = "client"
	UserTypeTattooer = "tattooer"
)

// User represents an account on the Inkspot platform.
type User struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Name                string    `json:"name"`
	Username            string    `gorm:"index:idx_users_username,unique,where:username <> ''" json:"username"`
	Email               string    `gorm:"uniqueIndex;not null" json:"email"`
	Password            string    `gorm:"not null" json:"-"`
	NotificationEnabled bool      `gorm:"not null;default:true" json:"notification_enabled"`
	UserType            string    `gorm:"not null;default:client" json:"user_type"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Posts   []Post   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}

// IsTattooer reports whether the user is a service provider.
func (u *User) IsTattooer() bool {
	return u.UserType == UserTypeTattooer
}
