package repository

import (
	"context"
	"net/http"
	"time"

	"wifi_io_panel/internal/models"
)

// DeviceRepo is the remote board reached over HTTP.
type DeviceRepo interface {
	FetchStatus(ctx context.Context) (models.AppInfo, error)
	PushGPIO(ctx context.Context, pin int) (models.ControlResult, error)
}

// NotificationRepo keeps the most recent toasts in memory.
type NotificationRepo interface {
	Append(ctx context.Context, n models.Notification) error
	List(ctx context.Context, from, to time.Time, level string) ([]models.Notification, error)
}

type Repository struct {
	Device        DeviceRepo
	Notifications NotificationRepo
}

// Options configures NewRepository.
type Options struct {
	DeviceBaseURL        string
	DeviceTimeout        time.Duration // 0 means no timeout
	NotificationCapacity int
}

func NewRepository(opts Options) *Repository {
	return &Repository{
		Device:        NewDeviceHTTP(opts.DeviceBaseURL, &http.Client{Timeout: opts.DeviceTimeout}),
		Notifications: NewNotificationMemory(opts.NotificationCapacity),
	}
}
