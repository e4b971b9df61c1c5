package service

import (
	"context"
	"strconv"
	"time"

	"wifi_io_panel/internal/logger"
	"wifi_io_panel/internal/metrics"
	"wifi_io_panel/internal/models"
	"wifi_io_panel/internal/repository"

	"github.com/google/uuid"
)

const otherPinLabel = "other"

type ControlService struct {
	device        repository.DeviceRepo
	notifications repository.NotificationRepo
	pub           Publisher
	messages      Messages
	log           *logger.Logger
}

func NewControlService(device repository.DeviceRepo, notifications repository.NotificationRepo, pub Publisher, messages Messages, log *logger.Logger) *ControlService {
	if log == nil {
		log = logger.Nop()
	}
	return &ControlService{
		device:        device,
		notifications: notifications,
		pub:           pub,
		messages:      messages,
		log:           log,
	}
}

// TriggerPin sends one GET /api/gpio/push/{pin} and returns the resulting
// toast. Only a reply with status "OK" counts as success; a non-OK status,
// a transport error and a non-2xx reply all give the same failure toast.
// The pin is passed through without a range check.
func (s *ControlService) TriggerPin(ctx context.Context, pin int) models.Notification {
	start := time.Now()
	res, err := s.device.PushGPIO(ctx, pin)
	metrics.ObserveDeviceLatency("gpio_push", time.Since(start))

	ok := err == nil && res.Succeeded()
	metrics.RecordGPIOPush(pinLabel(pin), ok)
	if err != nil {
		s.log.Debugw("gpio_push_failed", "pin", pin, "err", err)
	} else if !ok {
		s.log.Debugw("gpio_push_rejected", "pin", pin, "status", res.Status)
	}

	n := s.toast(ok, pin)

	if s.notifications != nil {
		if err := s.notifications.Append(ctx, n); err != nil {
			s.log.Errorw("notification_append_failed", "err", err, "id", n.ID)
		}
	}
	if s.pub != nil {
		s.pub.Publish(Event{Type: EventToast, Data: n})
	}
	return n
}

// pinLabel keeps the metric label set bounded: pins outside the panel's
// list share one series.
func pinLabel(pin int) string {
	for _, p := range gpioList {
		if p == pin {
			return strconv.Itoa(pin)
		}
	}
	return otherPinLabel
}

func (s *ControlService) toast(ok bool, pin int) models.Notification {
	n := models.Notification{
		ID:         uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		Pin:        pin,
	}
	if ok {
		n.Level = models.LevelSuccess
		n.Title = s.messages.SuccessTitle
		n.Message = s.messages.SuccessText
	} else {
		n.Level = models.LevelError
		n.Title = s.messages.FailureTitle
		n.Message = s.messages.FailureText
	}
	return n
}
