package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"wifi_io_panel/internal/models"
	"wifi_io_panel/internal/repository"
)

type NotificationService struct {
	repo repository.NotificationRepo
}

func NewNotificationService(repo repository.NotificationRepo) *NotificationService {
	return &NotificationService{repo: repo}
}

var (
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
	errInvalidLevel     = errors.New("invalid level: must be SUCCESS or ERROR")
)

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeFilter(f NotificationFilter) (NotificationFilter, error) {
	out := NotificationFilter{
		From:  normalizeToUTC(f.From),
		To:    normalizeToUTC(f.To),
		Level: strings.ToUpper(strings.TrimSpace(f.Level)),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return NotificationFilter{}, errInvalidTimeRange
	}
	switch out.Level {
	case "", models.LevelSuccess, models.LevelError:
	default:
		return NotificationFilter{}, errInvalidLevel
	}
	return out, nil
}

func (s *NotificationService) List(ctx context.Context, f NotificationFilter) ([]models.Notification, error) {
	nf, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, nf.From, nf.To, nf.Level)
}

// IsFilterError reports whether err came from filter validation.
func IsFilterError(err error) bool {
	return errors.Is(err, errInvalidTimeRange) || errors.Is(err, errInvalidLevel)
}
