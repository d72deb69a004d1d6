package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
)

// MessageRepository handles database operations for messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a new message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) (int64, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, listing_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING message_id, sent_at
	`

	err := r.db.QueryRow(ctx, query,
		message.SenderID,
		message.ReceiverID,
		message.ListingID,
		message.Content,
	).Scan(&message.ID, &message.SentAt)
	if err != nil {
		return 0, fmt.Errorf("error creating message: %w", err)
	}

	return message.ID, nil
}

// ListForUser retrieves all messages the user sent or received, newest first
func (r *MessageRepository) ListForUser(ctx context.Context, userID int64) ([]models.MessageDetail, error) {
	query := `
		SELECT m.message_id, m.sender_id, m.receiver_id, m.listing_id, m.content, m.sent_at, m.is_read,
		       s.full_name, r.full_name, l.title
		FROM messages m
		JOIN users s ON m.sender_id = s.user_id
		JOIN users r ON m.receiver_id = r.user_id
		LEFT JOIN listings l ON m.listing_id = l.listing_id
		WHERE m.sender_id = $1 OR m.receiver_id = $1
		ORDER BY m.sent_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	defer rows.Close()

	var messages []models.MessageDetail
	for rows.Next() {
		var detail models.MessageDetail
		err := rows.Scan(
			&detail.ID,
			&detail.SenderID,
			&detail.ReceiverID,
			&detail.ListingID,
			&detail.Content,
			&detail.SentAt,
			&detail.IsRead,
			&detail.SenderName,
			&detail.ReceiverName,
			&detail.ListingTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, nil
}

// Conversation retrieves the full two-way history between two users, oldest first
func (r *MessageRepository) Conversation(ctx context.Context, userID, otherUserID int64) ([]models.MessageDetail, error) {
	query := `
		SELECT m.message_id, m.sender_id, m.receiver_id, m.listing_id, m.content, m.sent_at, m.is_read,
		       s.full_name, l.title
		FROM messages m
		JOIN users s ON m.sender_id = s.user_id
		LEFT JOIN listings l ON m.listing_id = l.listing_id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.sent_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID, otherUserID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving conversation: %w", err)
	}
	defer rows.Close()

	var messages []models.MessageDetail
	for rows.Next() {
		var detail models.MessageDetail
		err := rows.Scan(
			&detail.ID,
			&detail.SenderID,
			&detail.ReceiverID,
			&detail.ListingID,
			&detail.Content,
			&detail.SentAt,
			&detail.IsRead,
			&detail.SenderName,
			&detail.ListingTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, nil
}

// MarkConversationRead flips unread messages from sender to receiver and
// reports how many rows changed. The operation is idempotent.
func (r *MessageRepository) MarkConversationRead(ctx context.Context, receiverID, senderID int64) (int64, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE messages SET is_read = TRUE WHERE receiver_id = $1 AND sender_id = $2 AND NOT is_read`,
		receiverID, senderID,
	)
	if err != nil {
		return 0, fmt.Errorf("error marking conversation read: %w", err)
	}
	return result.RowsAffected(), nil
}

// ListConversations builds the per-counterparty inbox rollup: last message,
// its timestamp and the caller's unread count.
func (r *MessageRepository) ListConversations(ctx context.Context, userID int64) ([]models.ConversationSummary, error) {
	query := `
		SELECT pairs.other_user_id, u.full_name, u.role,
		       COALESCE(last.content, ''), last.sent_at, COALESCE(unread.cnt, 0)
		FROM (
			SELECT DISTINCT CASE WHEN m.sender_id = $1 THEN m.receiver_id ELSE m.sender_id END AS other_user_id
			FROM messages m
			WHERE m.sender_id = $1 OR m.receiver_id = $1
		) pairs
		JOIN users u ON u.user_id = pairs.other_user_id
		LEFT JOIN LATERAL (
			SELECT m2.content, m2.sent_at
			FROM messages m2
			WHERE (m2.sender_id = $1 AND m2.receiver_id = pairs.other_user_id)
			   OR (m2.sender_id = pairs.other_user_id AND m2.receiver_id = $1)
			ORDER BY m2.sent_at DESC
			LIMIT 1
		) last ON TRUE
		LEFT JOIN LATERAL (
			SELECT COUNT(*) AS cnt
			FROM messages m3
			WHERE m3.receiver_id = $1 AND m3.sender_id = pairs.other_user_id AND NOT m3.is_read
		) unread ON TRUE
		ORDER BY last.sent_at DESC NULLS LAST
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}
	defer rows.Close()

	var conversations []models.ConversationSummary
	for rows.Next() {
		var summary models.ConversationSummary
		err := rows.Scan(
			&summary.OtherUserID,
			&summary.OtherUserName,
			&summary.OtherUserRole,
			&summary.LastMessage,
			&summary.LastMessageTime,
			&summary.UnreadCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning conversation row: %w", err)
		}
		conversations = append(conversations, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conversation rows: %w", err)
	}

	return conversations, nil
}
