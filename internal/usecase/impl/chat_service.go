package impl

import (
	"context"
	"log/slog"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultChatRecentLimit = 50

// chatService implements the ChatUsecase interface.
type chatService struct {
	chatRepo    repository.ChatRepository
	accountRepo repository.AccountRepository
	recentLimit int
	logger      *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(
	chatRepo repository.ChatRepository,
	accountRepo repository.AccountRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ChatUsecase {
	recentLimit := defaultChatRecentLimit
	if cfg != nil && cfg.Chat != nil && cfg.Chat.RecentLimit > 0 {
		recentLimit = cfg.Chat.RecentLimit
	}

	return &chatService{
		chatRepo:    chatRepo,
		accountRepo: accountRepo,
		recentLimit: recentLimit,
		logger:      logger,
	}
}

// SendMessage stores a message from sender to receiver.
func (srv *chatService) SendMessage(ctx context.Context, senderID, receiverID uuid.UUID, message string) (*entity.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message must not be empty")
	}
	if senderID == receiverID {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cannot message yourself")
	}

	if _, err := srv.accountRepo.FindByID(ctx, receiverID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("receiver not found")
		}

		return nil, errors.Wrap(err, "failed to find receiver")
	}

	chatMessage := &entity.ChatMessage{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    message,
	}
	if err := srv.chatRepo.Create(ctx, chatMessage); err != nil {
		srv.logger.Error("Failed to send message", "error", err, "senderID", senderID)

		return nil, errors.Wrap(err, "failed to send message")
	}

	return chatMessage, nil
}

// GetConversation returns the recent messages between the account and the
// peer, oldest first, and marks the peer's messages read.
func (srv *chatService) GetConversation(ctx context.Context, accountID, peerID uuid.UUID) ([]*entity.ChatMessage, error) {
	messages, err := srv.chatRepo.ListConversation(ctx, accountID, peerID, srv.recentLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation")
	}

	if err := srv.chatRepo.MarkRead(ctx, accountID, peerID); err != nil {
		// Reads still succeed when the read-flag update fails; the next
		// poll retries it.
		srv.logger.Warn("Failed to mark conversation read", "error", err, "accountID", accountID, "peerID", peerID)
	}

	return messages, nil
}

// UnreadCount returns the number of unread messages addressed to the account.
func (srv *chatService) UnreadCount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	count, err := srv.chatRepo.CountUnread(ctx, accountID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}
