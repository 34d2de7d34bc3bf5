package dto

import (
	"time"

	"github.com/japb1998/outreach-crm/internal/model"
)

type ClientDto struct {
	ID               int     `json:"id"`
	UserID           int     `json:"userId"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Company          *string `json:"company"`
	LinkedinURL      *string `json:"linkedinUrl"`
	Phone            *string `json:"phone"`
	Notes            *string `json:"notes"`
	PreferredChannel string  `json:"preferredChannel"`
	CreatedAt        string  `json:"createdAt"`
}

type CreateClientInput struct {
	Name             string  `json:"name" binding:"required,min=1"`
	Email            string  `json:"email" binding:"required,email"`
	Company          *string `json:"company" binding:"omitempty,min=1"`
	LinkedinURL      *string `json:"linkedinUrl" binding:"omitempty,url"`
	Phone            *string `json:"phone" binding:"omitempty,min=1"`
	Notes            *string `json:"notes"`
	PreferredChannel string  `json:"preferredChannel" binding:"omitempty,oneof=email linkedin"`
}

type PatchClientInput struct {
	Name             *string `json:"name" binding:"omitempty,min=1"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Company          *string `json:"company"`
	LinkedinURL      *string `json:"linkedinUrl" binding:"omitempty,url"`
	Phone            *string `json:"phone"`
	Notes            *string `json:"notes"`
	PreferredChannel *string `json:"preferredChannel" binding:"omitempty,oneof=email linkedin"`
}

func NewClientFromModel(c model.Client) *ClientDto {
	return &ClientDto{
		ID:               c.ID,
		UserID:           c.UserID,
		Name:             c.Name,
		Email:            c.Email,
		Company:          c.Company,
		LinkedinURL:      c.LinkedinURL,
		Phone:            c.Phone,
		Notes:            c.Notes,
		PreferredChannel: c.PreferredChannel,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
	}
}
