package models

import (
	"time"
)

// Post is a content record published by a user. Mutable only by its owner.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Image       string    `gorm:"not null" json:"image"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Likes       int       `gorm:"not null;default:0" json:"likes"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
