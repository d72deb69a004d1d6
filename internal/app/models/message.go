package models

import (
	"time"
)

// Message defines the message model based on the 'messages' table.
// Messages are immutable once created except for the is_read flag.
type Message struct {
	ID         int64     `json:"message_id" db:"message_id"`
	SenderID   int64     `json:"sender_id" db:"sender_id"`
	ReceiverID int64     `json:"receiver_id" db:"receiver_id"`
	ListingID  *int64    `json:"listing_id,omitempty" db:"listing_id"`
	Content    string    `json:"content" db:"content"`
	SentAt     time.Time `json:"sent_at" db:"sent_at"`
	IsRead     bool      `json:"is_read" db:"is_read"`
}

// MessageDetail is a message joined with display names
type MessageDetail struct {
	Message
	SenderName   string  `json:"sender_name"`
	ReceiverName *string `json:"receiver_name,omitempty"`
	ListingTitle *string `json:"listing_title,omitempty"`
}

// ConversationSummary is a per-counterparty inbox rollup
type ConversationSummary struct {
	OtherUserID     int64      `json:"other_user_id"`
	OtherUserName   string     `json:"other_user_name"`
	OtherUserRole   RoleType   `json:"other_user_role"`
	LastMessage     string     `json:"last_message"`
	LastMessageTime *time.Time `json:"last_message_time,omitempty"`
	UnreadCount     int64      `json:"unread_count"`
}
