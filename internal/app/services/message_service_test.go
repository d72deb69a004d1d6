package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/apperrors"
)

func TestMessageSend(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers a message to an existing user", func(t *testing.T) {
		messages := new(mockMessageStore)
		users := new(mockUserStore)
		svc := NewMessageService(messages, users)

		users.On("FindByID", ctx, int64(2)).Return(&models.User{ID: 2}, nil)
		messages.On("Create", ctx, mock.MatchedBy(func(m *models.Message) bool {
			return m.SenderID == 1 && m.ReceiverID == 2 && m.Content == "Is the room still free?"
		})).Return(int64(5), nil)

		resp, err := svc.Send(ctx, 1, &dto.SendMessageRequest{ReceiverID: 2, Content: "Is the room still free?"})

		assert.NoError(t, err)
		assert.Equal(t, int64(5), resp.MessageID)
	})

	t.Run("rejects sending to yourself", func(t *testing.T) {
		svc := NewMessageService(new(mockMessageStore), new(mockUserStore))

		_, err := svc.Send(ctx, 1, &dto.SendMessageRequest{ReceiverID: 1, Content: "hi"})

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects blank content", func(t *testing.T) {
		svc := NewMessageService(new(mockMessageStore), new(mockUserStore))

		_, err := svc.Send(ctx, 1, &dto.SendMessageRequest{ReceiverID: 2, Content: "   "})

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("unknown receiver is not found", func(t *testing.T) {
		messages := new(mockMessageStore)
		users := new(mockUserStore)
		svc := NewMessageService(messages, users)

		users.On("FindByID", ctx, int64(404)).Return(nil, nil)

		_, err := svc.Send(ctx, 1, &dto.SendMessageRequest{ReceiverID: 404, Content: "hi"})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		messages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestMessageConversation(t *testing.T) {
	ctx := context.Background()

	t.Run("fetching returns the unread state, then marks messages read", func(t *testing.T) {
		messages := new(mockMessageStore)
		svc := NewMessageService(messages, new(mockUserStore))

		var calls []string
		history := []models.MessageDetail{{Message: models.Message{ID: 5, SenderID: 2, ReceiverID: 1, IsRead: false}}}
		messages.On("Conversation", ctx, int64(1), int64(2)).
			Run(func(mock.Arguments) { calls = append(calls, "select") }).
			Return(history, nil)
		messages.On("MarkConversationRead", ctx, int64(1), int64(2)).
			Run(func(mock.Arguments) { calls = append(calls, "markRead") }).
			Return(int64(1), nil)

		got, err := svc.Conversation(ctx, 1, 2)

		assert.NoError(t, err)
		assert.Equal(t, history, got)
		assert.False(t, got[0].IsRead)
		assert.Equal(t, []string{"select", "markRead"}, calls)
	})
}

func TestMessageMarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("reports how many messages changed", func(t *testing.T) {
		messages := new(mockMessageStore)
		svc := NewMessageService(messages, new(mockUserStore))

		messages.On("MarkConversationRead", ctx, int64(1), int64(2)).Return(int64(3), nil)

		resp, err := svc.MarkRead(ctx, 1, 2)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.Updated)
	})
}
