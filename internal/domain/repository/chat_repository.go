package repository

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// ChatRepository defines persistence operations for chat messages.
type ChatRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error

	// ListConversation returns messages exchanged between the two
	// accounts in either direction, oldest first, capped at limit.
	ListConversation(ctx context.Context, accountID, peerID uuid.UUID, limit int) ([]*entity.ChatMessage, error)

	// MarkRead flags all unread messages sent by peerID to accountID.
	MarkRead(ctx context.Context, accountID, peerID uuid.UUID) error

	// CountUnread returns the number of unread messages addressed to
	// the account.
	CountUnread(ctx context.Context, accountID uuid.UUID) (int64, error)
}
