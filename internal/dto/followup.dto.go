package dto

import (
	"time"

	"github.com/japb1998/outreach-crm/internal/model"
)

type FollowUpDto struct {
	ID           int     `json:"id"`
	UserID       int     `json:"userId"`
	ClientID     int     `json:"clientId"`
	Subject      string  `json:"subject"`
	Content      *string `json:"content"`
	Context      *string `json:"context"`
	Channel      string  `json:"channel"`
	Priority     string  `json:"priority"`
	Status       string  `json:"status"`
	ScheduledFor string  `json:"scheduledFor"`
	SentAt       *string `json:"sentAt"`
	TemplateID   *int    `json:"templateId"`
	CreatedAt    string  `json:"createdAt"`
}

// FollowUpWithClient is the upcoming-view shape: the follow-up enriched with
// its client record, nil when the client was deleted.
type FollowUpWithClient struct {
	FollowUpDto
	Client *ClientDto `json:"client"`
}

type CreateFollowUpInput struct {
	ClientID     int     `json:"clientId" binding:"required,min=1"`
	Subject      string  `json:"subject" binding:"required,min=1"`
	Content      *string `json:"content"`
	Context      *string `json:"context"`
	Channel      string  `json:"channel" binding:"required,oneof=email linkedin"`
	Priority     string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	ScheduledFor string  `json:"scheduledFor" binding:"required,rfc3339"`
	TemplateID   *int    `json:"templateId" binding:"omitempty,min=1"`
}

type PatchFollowUpInput struct {
	Subject      *string `json:"subject" binding:"omitempty,min=1"`
	Content      *string `json:"content"`
	Context      *string `json:"context"`
	Channel      *string `json:"channel" binding:"omitempty,oneof=email linkedin"`
	Priority     *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	ScheduledFor *string `json:"scheduledFor" binding:"omitempty,rfc3339"`
	TemplateID   *int    `json:"templateId" binding:"omitempty,min=1"`
}

func NewFollowUpFromModel(f model.FollowUp) *FollowUpDto {
	d := &FollowUpDto{
		ID:           f.ID,
		UserID:       f.UserID,
		ClientID:     f.ClientID,
		Subject:      f.Subject,
		Content:      f.Content,
		Context:      f.Context,
		Channel:      f.Channel,
		Priority:     f.Priority,
		Status:       f.Status,
		ScheduledFor: f.ScheduledFor.Format(time.RFC3339),
		TemplateID:   f.TemplateID,
		CreatedAt:    f.CreatedAt.Format(time.RFC3339),
	}
	if f.SentAt != nil {
		s := f.SentAt.Format(time.RFC3339)
		d.SentAt = &s
	}
	return d
}
