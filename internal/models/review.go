package models

import (
	"time"
)

// Review is feedback left by a user about a tattooer. Both sides reference
// the users table; a user may review the same tattooer more than once.
type Review struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Rating      int       `gorm:"not null" json:"rating"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	TattooerID  uint      `gorm:"not null;index" json:"tattooer_id"`
	Tattooer    User      `gorm:"foreignKey:TattooerID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
