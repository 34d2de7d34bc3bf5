package model

import "time"

// Message statuses.
const (
	MessageStatusDraft  = "draft"
	MessageStatusSent   = "sent"
	MessageStatusFailed = "failed"
)

// Message is the record of an outbound send attempt. FollowUpID is a
// back-reference only; deleting the follow-up leaves the message intact.
type Message struct {
	ID               int        `json:"id"`
	UserID           int        `json:"userId"`
	ClientID         int        `json:"clientId"`
	FollowUpID       *int       `json:"followUpId"`
	Channel          string     `json:"channel"`
	Subject          *string    `json:"subject"`
	Content          string     `json:"content"`
	Status           string     `json:"status"`
	SentAt           *time.Time `json:"sentAt"`
	ResponseReceived bool       `json:"responseReceived"`
	ResponseAt       *time.Time `json:"responseAt"`
	ProviderID       *string    `json:"providerId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}
