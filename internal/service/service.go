package service

import (
	"context"

	"wifi_io_panel/internal/logger"
	"wifi_io_panel/internal/models"
	"wifi_io_panel/internal/repository"
)

// Panel is the view model: the last device status and the fixed GPIO list.
type Panel interface {
	Initialize(ctx context.Context) <-chan struct{}
	RefreshStatus(ctx context.Context) models.AppInfo
	AppInfo() models.AppInfo
	GpioList() []int
}

// Control dispatches pin pushes and turns the outcome into a toast.
type Control interface {
	TriggerPin(ctx context.Context, pin int) models.Notification
}

// Notifications exposes the recent toast history.
type Notifications interface {
	List(ctx context.Context, f NotificationFilter) ([]models.Notification, error)
}

// Events lets transports follow status and toast updates as they happen.
type Events interface {
	Subscribe() (<-chan Event, func())
}

type Service struct {
	Panel
	Control
	Notifications
	Events

	// Messages are the toast texts for the configured locale.
	Messages Messages
}

// Options tunes the services built by NewService.
type Options struct {
	Locale string // ja | en
}

func NewService(repos *repository.Repository, opts Options, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	hub := NewHub()
	messages := MessagesFor(opts.Locale)
	return &Service{
		Panel:         NewPanelService(repos.Device, hub, log.Named("panel")),
		Control:       NewControlService(repos.Device, repos.Notifications, hub, messages, log.Named("control")),
		Notifications: NewNotificationService(repos.Notifications),
		Events:        hub,
		Messages:      messages,
	}
}
