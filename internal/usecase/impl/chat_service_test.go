package impl

import (
	"context"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatService_SendMessage_Success(t *testing.T) {
	mockChatRepo := mockRepo.NewMockChatRepository(t)
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	service := NewChatService(mockChatRepo, mockAccountRepo, &config.Config{}, testLogger())

	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()
	messageID := uuid.New()

	mockAccountRepo.EXPECT().
		FindByID(ctx, receiverID).
		Return(&entity.Account{ID: receiverID, IsActive: true}, nil)

	mockChatRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Run(func(_ context.Context, message *entity.ChatMessage) {
			message.ID = messageID
		}).
		Return(nil)

	message, err := service.SendMessage(ctx, senderID, receiverID, "Is the stall open tonight?")
	require.NoError(t, err)
	assert.Equal(t, messageID, message.ID)
	assert.Equal(t, senderID, message.SenderID)
	assert.Equal(t, receiverID, message.ReceiverID)
	assert.False(t, message.IsRead)
}

func TestChatService_SendMessage_RejectsEmptyMessage(t *testing.T) {
	mockChatRepo := mockRepo.NewMockChatRepository(t)
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	service := NewChatService(mockChatRepo, mockAccountRepo, &config.Config{}, testLogger())

	message, err := service.SendMessage(context.Background(), uuid.New(), uuid.New(), "   ")
	require.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestChatService_SendMessage_RejectsSelfSend(t *testing.T) {
	mockChatRepo := mockRepo.NewMockChatRepository(t)
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	service := NewChatService(mockChatRepo, mockAccountRepo, &config.Config{}, testLogger())

	accountID := uuid.New()

	message, err := service.SendMessage(context.Background(), accountID, accountID, "hello me")
	require.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestChatService_SendMessage_UnknownReceiver(t *testing.T) {
	mockChatRepo := mockRepo.NewMockChatRepository(t)
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	service := NewChatService(mockChatRepo, mockAccountRepo, &config.Config{}, testLogger())

	ctx := context.Background()
	receiverID := uuid.New()

	mockAccountRepo.EXPECT().
		FindByID(ctx, receiverID).
		Return(nil, repository.ErrAccountNotFound)

	message, err := service.SendMessage(ctx, uuid.New(), receiverID, "anyone there?")
	require.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestChatService_GetConversation_MarksPeerMessagesRead(t *testing.T) {
	mockChatRepo := mockRepo.NewMockChatRepository(t)
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	service := NewChatService(mockChatRepo, mockAccountRepo, &config.Config{}, testLogger())

	ctx := context.Background()
	accountID := uuid.New()
	peerID := uuid.New()
	messages := []*entity.ChatMessage{
		{ID: uuid.New(), SenderID: peerID, ReceiverID: accountID, Message: "open at six"},
	}

	mockChatRepo.EXPECT().
		ListConversation(ctx, accountID, peerID, defaultChatRecentLimit).
		Return(messages, nil)
	mockChatRepo.EXPECT().MarkRead(ctx, accountID, peerID).Return(nil)

	got, err := service.GetConversation(ctx, accountID, peerID)
	require.NoError(t, err)
	assert.Equal(t, messages, got)
}

func TestChatService_GetConversation_MarkReadFailureIsNotFatal(t *testing.T) {
	mockChatRepo := mockRepo.NewMockChatRepository(t)
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	service := NewChatService(mockChatRepo, mockAccountRepo, &config.Config{}, testLogger())

	ctx := context.Background()
	accountID := uuid.New()
	peerID := uuid.New()
	messages := []*entity.ChatMessage{
		{ID: uuid.New(), SenderID: peerID, ReceiverID: accountID},
	}

	mockChatRepo.EXPECT().
		ListConversation(ctx, accountID, peerID, defaultChatRecentLimit).
		Return(messages, nil)
	mockChatRepo.EXPECT().
		MarkRead(ctx, accountID, peerID).
		Return(errors.New("write conflict"))

	got, err := service.GetConversation(ctx, accountID, peerID)
	require.NoError(t, err)
	assert.Equal(t, messages, got)
}

func TestChatService_GetConversation_ConfiguredRecentLimit(t *testing.T) {
	mockChatRepo := mockRepo.NewMockChatRepository(t)
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	cfg := &config.Config{Chat: &config.ChatConfig{RecentLimit: 10}}
	service := NewChatService(mockChatRepo, mockAccountRepo, cfg, testLogger())

	ctx := context.Background()
	accountID := uuid.New()
	peerID := uuid.New()

	mockChatRepo.EXPECT().
		ListConversation(ctx, accountID, peerID, 10).
		Return([]*entity.ChatMessage{}, nil)
	mockChatRepo.EXPECT().MarkRead(ctx, accountID, peerID).Return(nil)

	_, err := service.GetConversation(ctx, accountID, peerID)
	require.NoError(t, err)
}

func TestChatService_UnreadCount(t *testing.T) {
	mockChatRepo := mockRepo.NewMockChatRepository(t)
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	service := NewChatService(mockChatRepo, mockAccountRepo, &config.Config{}, testLogger())

	ctx := context.Background()
	accountID := uuid.New()

	mockChatRepo.EXPECT().CountUnread(ctx, accountID).Return(int64(4), nil)

	count, err := service.UnreadCount(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
