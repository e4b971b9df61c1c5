package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"wifi_io_panel/internal/models"

	"github.com/google/uuid"
)

const defaultNotificationCapacity = 100

// NotificationMemory is a fixed-size ring of recent toasts. Oldest entries
// are overwritten once capacity is reached.
type NotificationMemory struct {
	mu    sync.RWMutex
	buf   []models.Notification
	next  int
	count int
}

func NewNotificationMemory(capacity int) *NotificationMemory {
	if capacity <= 0 {
		capacity = defaultNotificationCapacity
	}
	return &NotificationMemory{buf: make([]models.Notification, capacity)}
}

var _ NotificationRepo = (*NotificationMemory)(nil)

// Append stores a toast. Empty ID and zero OccurredAt are filled in.
func (r *NotificationMemory) Append(ctx context.Context, n models.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.OccurredAt.IsZero() {
		n.OccurredAt = time.Now().UTC()
	} else {
		n.OccurredAt = n.OccurredAt.UTC()
	}
	n.Level = strings.ToUpper(strings.TrimSpace(n.Level))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf[r.next] = n
	r.next = (r.next + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
	return nil
}

// List returns toasts within [from, to] (zero bounds are open) and matching
// level when non-empty, oldest first.
func (r *NotificationMemory) List(ctx context.Context, from, to time.Time, level string) ([]models.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	level = strings.ToUpper(strings.TrimSpace(level))

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Notification, 0, r.count)
	start := (r.next - r.count + len(r.buf)) % len(r.buf)
	for i := 0; i < r.count; i++ {
		n := r.buf[(start+i)%len(r.buf)]
		if !from.IsZero() && n.OccurredAt.Before(from) {
			continue
		}
		if !to.IsZero() && n.OccurredAt.After(to) {
			continue
		}
		if level != "" && n.Level != level {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
