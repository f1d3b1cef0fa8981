package entities

import "github.com/aarondl/null/v8"

// Notification - запись входящих уведомлений пользователя на бэкенде.
type Notification struct {
	ID          string      `json:"id"`
	RecipientID string      `json:"recipient_id"`
	Message     string      `json:"message"`
	RequestID   string      `json:"request_id"`
	IsRead      bool        `json:"is_read"`
	CreatedAt   null.String `json:"created_at"`
}
