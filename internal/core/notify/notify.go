// Package notify defines user-facing notifications raised by background work.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time

	// Key groups repeats of the same event, e.g. retries of one failing
	// page. Empty means the message text is the key.
	Key string
}

// GroupKey returns the key repeats of n are merged under.
func (n Notification) GroupKey() string {
	if n.Key != "" {
		return n.Key
	}
	return string(n.Level) + ":" + n.Message
}

// New creates a notification stamped with the current time.
func New(level Level, message string) Notification {
	return Notification{Level: level, Message: message, CreatedAt: time.Now()}
}

// Keyed returns a copy of n grouped under key.
func (n Notification) Keyed(key string) Notification {
	n.Key = key
	return n
}
