package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// Create persists a new chat message.
func (repo *chatRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	messageM := fromChatDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid sender or receiver reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListConversation retrieves the most recent messages exchanged between
// the two accounts in either direction, returned oldest first. The query
// selects newest first so the limit keeps the tail of a long conversation,
// not its head.
func (repo *chatRepository) ListConversation(ctx context.Context, accountID, peerID uuid.UUID, limit int) ([]*entity.ChatMessage, error) {
	var messageModels []*model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			accountID, peerID, peerID, accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list conversation")
	}

	return toConversationDomain(messageModels), nil
}

// MarkRead flags all unread messages sent by peerID to accountID.
func (repo *chatRepository) MarkRead(ctx context.Context, accountID, peerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ChatMessageModel{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", accountID, peerID, false).
		Update("is_read", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark messages read")
	}

	return nil
}

// CountUnread returns the number of unread messages addressed to the account.
func (repo *chatRepository) CountUnread(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ChatMessageModel{}).
		Where("receiver_id = ? AND is_read = ?", accountID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

// --- Mapper Functions ---

// toConversationDomain converts newest-first rows into the oldest-first
// order the conversation view renders.
func toConversationDomain(data []*model.ChatMessageModel) []*entity.ChatMessage {
	messages := make([]*entity.ChatMessage, len(data))
	for i, messageM := range data {
		messages[len(data)-1-i] = toChatDomain(messageM)
	}

	return messages
}

// toChatDomain converts a GORM ChatMessageModel to a domain ChatMessage entity.
func toChatDomain(data *model.ChatMessageModel) *entity.ChatMessage {
	if data == nil {
		return nil
	}

	return &entity.ChatMessage{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Message:    data.Message,
		IsRead:     data.IsRead,
		CreatedAt:  data.CreatedAt,
	}
}

// fromChatDomain converts a domain ChatMessage entity to a GORM ChatMessageModel.
func fromChatDomain(data *entity.ChatMessage) *model.ChatMessageModel {
	if data == nil {
		return nil
	}

	return &model.ChatMessageModel{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Message:    data.Message,
		IsRead:     data.IsRead,
	}
}
