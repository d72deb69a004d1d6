package services

import (
	"context"
	"strings"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/apperrors"
)

// MessageService handles direct messaging between students and landlords
type MessageService struct {
	messages MessageStore
	users    UserStore
}

// NewMessageService creates a new MessageService
func NewMessageService(messages MessageStore, users UserStore) *MessageService {
	return &MessageService{
		messages: messages,
		users:    users,
	}
}

// Send delivers a message to another user, optionally tied to a listing
func (s *MessageService) Send(ctx context.Context, senderID int64, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if req.ReceiverID == senderID {
		return nil, apperrors.NewValidationError("cannot send a message to yourself")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewValidationError("message content is required")
	}

	receiver, err := s.users.FindByID(ctx, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, apperrors.ErrUserNotFound
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		ListingID:  req.ListingID,
		Content:    req.Content,
	}

	messageID, err := s.messages.Create(ctx, message)
	if err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{MessageID: messageID}, nil
}

// List retrieves every message the caller sent or received, newest first
func (s *MessageService) List(ctx context.Context, userID int64) ([]models.MessageDetail, error) {
	return s.messages.ListForUser(ctx, userID)
}

// Conversation retrieves the two-way history with another user, oldest first.
// Fetching a conversation marks the counterparty's messages read after the
// select, so the first fetch still shows which messages were unread.
func (s *MessageService) Conversation(ctx context.Context, userID, otherUserID int64) ([]models.MessageDetail, error) {
	history, err := s.messages.Conversation(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}
	if _, err := s.messages.MarkConversationRead(ctx, userID, otherUserID); err != nil {
		return nil, err
	}
	return history, nil
}

// MarkRead explicitly marks the counterparty's messages read and reports how
// many changed. Repeating the call is harmless.
func (s *MessageService) MarkRead(ctx context.Context, userID, otherUserID int64) (*dto.MarkReadResponse, error) {
	updated, err := s.messages.MarkConversationRead(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}
	return &dto.MarkReadResponse{Updated: updated}, nil
}

// Conversations retrieves the caller's inbox rollup
func (s *MessageService) Conversations(ctx context.Context, userID int64) ([]models.ConversationSummary, error) {
	return s.messages.ListConversations(ctx, userID)
}
