package dto

import (
	"time"

	"github.com/japb1998/outreach-crm/internal/model"
)

type MessageDto struct {
	ID               int     `json:"id"`
	UserID           int     `json:"userId"`
	ClientID         int     `json:"clientId"`
	FollowUpID       *int    `json:"followUpId"`
	Channel          string  `json:"channel"`
	Subject          *string `json:"subject"`
	Content          string  `json:"content"`
	Status           string  `json:"status"`
	SentAt           *string `json:"sentAt"`
	ResponseReceived bool    `json:"responseReceived"`
	ResponseAt       *string `json:"responseAt"`
	CreatedAt        string  `json:"createdAt"`
}

type SendMessageInput struct {
	ClientID   int     `json:"clientId" binding:"required,min=1"`
	Channel    string  `json:"channel" binding:"required,oneof=email linkedin"`
	Subject    *string `json:"subject"`
	Content    string  `json:"content" binding:"required,min=1"`
	FollowUpID *int    `json:"followUpId" binding:"omitempty,min=1"`
}

// SendMessageResult is the coordinator outcome. Success mirrors the channel
// send; the message record exists either way.
type SendMessageResult struct {
	Success bool        `json:"success"`
	Message *MessageDto `json:"message"`
	Error   string      `json:"error,omitempty"`
}

func NewMessageFromModel(m model.Message) *MessageDto {
	d := &MessageDto{
		ID:               m.ID,
		UserID:           m.UserID,
		ClientID:         m.ClientID,
		FollowUpID:       m.FollowUpID,
		Channel:          m.Channel,
		Subject:          m.Subject,
		Content:          m.Content,
		Status:           m.Status,
		ResponseReceived: m.ResponseReceived,
		CreatedAt:        m.CreatedAt.Format(time.RFC3339),
	}
	if m.SentAt != nil {
		s := m.SentAt.Format(time.RFC3339)
		d.SentAt = &s
	}
	if m.ResponseAt != nil {
		s := m.ResponseAt.Format(time.RFC3339)
		d.ResponseAt = &s
	}
	return d
}
