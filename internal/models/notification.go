package models

import "time"

// Notification levels.
const (
	LevelSuccess = "SUCCESS"
	LevelError   = "ERROR"
)

// Notification is a transient toast shown to the panel user.
type Notification struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Level      string    `json:"level"` // SUCCESS | ERROR
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Pin        int       `json:"pin"`
}

// Failed reports whether the toast is an error toast.
func (n Notification) Failed() bool {
	return n.Level == LevelError
}
