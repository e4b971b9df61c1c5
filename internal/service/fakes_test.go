package service

import (
	"context"
	"sync"
	"time"

	"wifi_io_panel/internal/models"
)

type fakeDevice struct {
	mu sync.Mutex

	status    models.AppInfo
	statusErr error
	push      models.ControlResult
	pushErr   error

	statusCalls int
	pushedPins  []int
}

func (f *fakeDevice) FetchStatus(ctx context.Context) (models.AppInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls++
	return f.status, f.statusErr
}

func (f *fakeDevice) PushGPIO(ctx context.Context, pin int) (models.ControlResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushedPins = append(f.pushedPins, pin)
	return f.push, f.pushErr
}

func (f *fakeDevice) calls() (int, []int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statusCalls, append([]int(nil), f.pushedPins...)
}

type fakeNotificationRepo struct {
	appendErr error
	items     []models.Notification

	lastFrom  time.Time
	lastTo    time.Time
	lastLevel string
}

func (f *fakeNotificationRepo) Append(ctx context.Context, n models.Notification) error {
	f.items = append(f.items, n)
	return f.appendErr
}

func (f *fakeNotificationRepo) List(ctx context.Context, from, to time.Time, level string) ([]models.Notification, error) {
	f.lastFrom, f.lastTo, f.lastLevel = from, to, level
	return f.items, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *recordingPublisher) Publish(e Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) published() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event(nil), p.events...)
}
