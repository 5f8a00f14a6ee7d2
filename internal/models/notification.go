package models

import (
	"time"
)

// Notification is a message addressed to a user. UserID is the recipient;
// SenderID is the acting user that produced it.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	SenderID  uint      `gorm:"not null" json:"sender_id"`
	Sender    User      `gorm:"foreignKey:SenderID" json:"-"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
