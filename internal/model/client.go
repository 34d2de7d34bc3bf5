package model

import "time"

// Client is a contact the user reaches out to. Optional contact fields are
// pointers so absent values serialize as JSON null.
type Client struct {
	ID               int       `json:"id"`
	UserID           int       `json:"userId"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Company          *string   `json:"company"`
	LinkedinURL      *string   `json:"linkedinUrl"`
	Phone            *string   `json:"phone"`
	Notes            *string   `json:"notes"`
	PreferredChannel string    `json:"preferredChannel"`
	CreatedAt        time.Time `json:"createdAt"`
}

func NewClient(userID int, name, email, preferredChannel string, company, linkedinURL, phone, notes *string) *Client {
	if preferredChannel == "" {
		preferredChannel = ChannelEmail
	}
	return &Client{
		UserID:           userID,
		Name:             name,
		Email:            email,
		Company:          company,
		LinkedinURL:      linkedinURL,
		Phone:            phone,
		Notes:            notes,
		PreferredChannel: preferredChannel,
	}
}
