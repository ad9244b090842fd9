package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is a single message between two accounts. Conversations are
// ordered by CreatedAt per sender/receiver pair and fetched by polling.
type ChatMessage struct {
	ID         uuid.UUID
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Message    string
	IsRead     bool
	CreatedAt  time.Time
}
