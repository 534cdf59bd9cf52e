package models

import (
	"time"
)

// ChatMessage is one entry in a farmer's supplier-chat log. The log is
// append-only.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	MessageID string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"message_id"`
	FarmerID  string    `gorm:"type:varchar(64);not null;index" json:"farmer_id"`
	Sender    string    `gorm:"type:varchar(100);not null" json:"sender"`
	Role      string    `gorm:"type:varchar(20);not null" json:"sender_role"`
	Body      string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// Sender role constants
const (
	RoleFarmer   = "farmer"
	RoleSupplier = "supplier"
)

func (ChatMessage) TableName() string {
	return "chat_messages"
}
