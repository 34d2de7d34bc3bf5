package dto

import (
	"time"

	"github.com/japb1998/outreach-crm/internal/model"
)

type TemplateDto struct {
	ID        int      `json:"id"`
	UserID    int      `json:"userId"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Channel   string   `json:"channel"`
	Subject   *string  `json:"subject"`
	Content   string   `json:"content"`
	Variables []string `json:"variables"`
	CreatedAt string   `json:"createdAt"`
}

type CreateTemplateInput struct {
	Name      string   `json:"name" binding:"required,min=2"`
	Category  string   `json:"category" binding:"required,oneof=follow-up introduction proposal check-in"`
	Channel   string   `json:"channel" binding:"required,oneof=email linkedin both"`
	Subject   *string  `json:"subject"`
	Content   string   `json:"content" binding:"required,min=1"`
	Variables []string `json:"variables" binding:"omitempty,dive,min=1"`
}

func NewTemplateFromModel(t model.Template) *TemplateDto {
	return &TemplateDto{
		ID:        t.ID,
		UserID:    t.UserID,
		Name:      t.Name,
		Category:  t.Category,
		Channel:   t.Channel,
		Subject:   t.Subject,
		Content:   t.Content,
		Variables: t.Variables,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}
