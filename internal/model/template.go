package model

import "time"

// Template is a reusable message body. Content may carry {{variable}}
// placeholders; substitution is a display concern, the server stores them
// verbatim. Templates are immutable once created.
type Template struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Channel   string    `json:"channel"`
	Subject   *string   `json:"subject"`
	Content   string    `json:"content"`
	Variables []string  `json:"variables"`
	CreatedAt time.Time `json:"createdAt"`
}
