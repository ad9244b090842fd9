package usecase

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// ChatUsecase defines the interface for the polling chat operations.
type ChatUsecase interface {
	// SendMessage stores a message from sender to receiver.
	SendMessage(ctx context.Context, senderID, receiverID uuid.UUID, message string) (*entity.ChatMessage, error)

	// GetConversation returns the recent messages between the account
	// and the peer, oldest first, and marks the peer's messages read.
	GetConversation(ctx context.Context, accountID, peerID uuid.UUID) ([]*entity.ChatMessage, error)

	// UnreadCount returns the number of unread messages addressed to
	// the account, for the polling badge.
	UnreadCount(ctx context.Context, accountID uuid.UUID) (int64, error)
}
