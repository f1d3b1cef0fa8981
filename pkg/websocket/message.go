package websocket

import "time"

// Envelope - "конверт" сообщения для оболочки.
// Type подсказывает оболочке, что делать с Payload.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// Типы сообщений консоли.
const (
	MessageToast   = "toast"
	MessageRefresh = "refresh"
)
