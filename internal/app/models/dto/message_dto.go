package dto

// SendMessageRequest is the message creation payload
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" binding:"required"`
	ListingID  *int64 `json:"listing_id,omitempty"`
	Content    string `json:"content" binding:"required"`
}

// SendMessageResponse carries the new message identifier
type SendMessageResponse struct {
	MessageID int64 `json:"message_id" example:"101"`
}

// MarkReadResponse reports how many messages were marked read
type MarkReadResponse struct {
	Updated int64 `json:"updated" example:"3"`
}
