package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessageModel mirrors the 'chats' table.
type ChatMessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index"`
	Message    string    `gorm:"type:text;not null"`
	IsRead     bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chats"
}
