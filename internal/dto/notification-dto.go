package dto

import (
	"time"

	"gearguard/internal/entities"
)

// ToastLevel - вид всплывающего уведомления.
type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastInfo    ToastLevel = "info"
)

// ToastDTO - временное уведомление для оболочки браузера.
type ToastDTO struct {
	ID        string     `json:"id"`
	Level     ToastLevel `json:"level"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}

type InboxDTO struct {
	Items  []entities.Notification `json:"items"`
	Unread int                     `json:"unread"`
}
