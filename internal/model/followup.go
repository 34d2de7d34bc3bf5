package model

import "time"

// Follow-up statuses. "overdue" is derived on read and never stored.
const (
	FollowUpStatusPending = "pending"
	FollowUpStatusSent    = "sent"
)

// FollowUp is a scheduled outbound communication tied to a client.
// Status only ever moves pending -> sent, and SentAt is set exactly when
// that transition happens.
type FollowUp struct {
	ID           int        `json:"id"`
	UserID       int        `json:"userId"`
	ClientID     int        `json:"clientId"`
	Subject      string     `json:"subject"`
	Content      *string    `json:"content"`
	Context      *string    `json:"context"`
	Channel      string     `json:"channel"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	ScheduledFor time.Time  `json:"scheduledFor"`
	SentAt       *time.Time `json:"sentAt"`
	TemplateID   *int       `json:"templateId"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func NewFollowUp(userID, clientID int, subject, channel, priority string, scheduledFor time.Time, content, context *string, templateID *int) *FollowUp {
	if priority == "" {
		priority = PriorityMedium
	}
	return &FollowUp{
		UserID:       userID,
		ClientID:     clientID,
		Subject:      subject,
		Content:      content,
		Context:      context,
		Channel:      channel,
		Priority:     priority,
		Status:       FollowUpStatusPending,
		ScheduledFor: scheduledFor,
		TemplateID:   templateID,
	}
}
