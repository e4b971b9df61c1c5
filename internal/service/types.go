package service

import "time"

// NotificationFilter narrows the toast history.
type NotificationFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Level string    // "", "SUCCESS", "ERROR"
}

// Event types pushed to subscribers.
const (
	EventStatus = "status"
	EventToast  = "toast"
)

// Event is one update delivered to subscribers.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}
