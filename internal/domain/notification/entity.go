package notification

import (
	"time"
)

// Level is how the UI presents a notice.
type Level string

const (
	LevelLoading Level = "loading"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notice is a user-visible, non-blocking message. A loading notice is later
// replaced by the success or error notice that carries the same ID.
type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Event names used on the notice stream
const (
	EventNotice    = "notice"
	EventConnected = "connected"
	EventPing      = "ping"
)
