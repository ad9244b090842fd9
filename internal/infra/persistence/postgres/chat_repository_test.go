package postgres

import (
	"fmt"
	"testing"
	"time"

	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToConversationDomain_ReversesNewestFirstRows(t *testing.T) {
	sender := uuid.New()
	receiver := uuid.New()
	base := time.Now()

	// Rows arrive newest first, the way the capped conversation query
	// returns them.
	rows := make([]*model.ChatMessageModel, 0, 50)
	for i := 59; i >= 10; i-- {
		rows = append(rows, &model.ChatMessageModel{
			ID:         uuid.New(),
			SenderID:   sender,
			ReceiverID: receiver,
			Message:    fmt.Sprintf("message %d", i),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}

	messages := toConversationDomain(rows)
	require.Len(t, messages, 50)

	// Oldest of the kept window first, newest last.
	assert.Equal(t, "message 10", messages[0].Message)
	assert.Equal(t, "message 59", messages[len(messages)-1].Message)
	for i := 1; i < len(messages); i++ {
		assert.True(t, messages[i-1].CreatedAt.Before(messages[i].CreatedAt))
	}
}

func TestToConversationDomain_Empty(t *testing.T) {
	assert.Empty(t, toConversationDomain(nil))
}
