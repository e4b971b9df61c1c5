// Package devicesim emulates the Wi-Fi IO board's HTTP API so the panel can
// be run and tested without hardware.
package devicesim

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"wifi_io_panel/internal/logger"
	"wifi_io_panel/internal/models"
)

const (
	// ESP32 exposes GPIO 0..39; 34..39 are input only.
	maxGPIO            = 39
	firstInputOnlyGPIO = 34

	DefaultDrivePeriod = 300 * time.Millisecond
)

var (
	errPinRange     = errors.New("pin out of range")
	errPinInputOnly = errors.New("pin is input only")
)

// Identity is what the board reports about its firmware.
type Identity struct {
	Name        string
	Version     string
	EspIDF      string
	CompileDate string
	CompileTime string
}

// Board is a simulated device. Pushing a pin drives it as an output for
// DrivePeriod; Run releases pins whose period has elapsed.
type Board struct {
	id          Identity
	drivePeriod time.Duration
	bootedAt    time.Time
	now         func() time.Time
	log         *logger.Logger

	mu     sync.Mutex
	driven map[int]time.Time // pin -> release time
}

func NewBoard(id Identity, drivePeriod time.Duration, log *logger.Logger) *Board {
	if drivePeriod <= 0 {
		drivePeriod = DefaultDrivePeriod
	}
	if log == nil {
		log = logger.Nop()
	}
	b := &Board{
		id:          id,
		drivePeriod: drivePeriod,
		now:         time.Now,
		log:         log,
		driven:      make(map[int]time.Time),
	}
	b.bootedAt = b.now()
	return b
}

// Status returns the firmware identity and the uptime since boot.
func (b *Board) Status() models.AppInfo {
	return models.AppInfo{
		Name:        b.id.Name,
		Version:     b.id.Version,
		EspIDF:      b.id.EspIDF,
		CompileDate: b.id.CompileDate,
		CompileTime: b.id.CompileTime,
		Elapse:      FormatUptime(b.now().Sub(b.bootedAt)),
	}
}

// Push starts driving pin. Pushing a pin that is already driven extends
// its drive period.
func (b *Board) Push(pin int) error {
	if err := validatePin(pin); err != nil {
		return fmt.Errorf("gpio %d: %w", pin, err)
	}
	releaseAt := b.now().Add(b.drivePeriod)

	b.mu.Lock()
	b.driven[pin] = releaseAt
	b.mu.Unlock()

	b.log.Infow("gpio_driven", "pin", pin, "release_at", releaseAt)
	return nil
}

// Driven returns the pins currently driven as outputs, ascending.
func (b *Board) Driven() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]int, 0, len(b.driven))
	for pin := range b.driven {
		out = append(out, pin)
	}
	sort.Ints(out)
	return out
}

// Run ticks at the given interval until ctx is canceled, releasing pins
// whose drive period elapsed.
func (b *Board) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			for _, pin := range b.release(b.now()) {
				b.log.Infow("gpio_released", "pin", pin)
			}
		}
	}
}

func (b *Board) release(now time.Time) []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	var released []int
	for pin, at := range b.driven {
		if !now.Before(at) {
			delete(b.driven, pin)
			released = append(released, pin)
		}
	}
	sort.Ints(released)
	return released
}

func validatePin(pin int) error {
	switch {
	case pin < 0 || pin > maxGPIO:
		return errPinRange
	case pin >= firstInputOnlyGPIO:
		return errPinInputOnly
	}
	return nil
}

// FormatUptime renders d as "D day(s) HH:MM:SS".
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	sec := int64(d / time.Second)
	day := sec / 86400
	hour := (sec % 86400) / 3600
	minute := (sec % 3600) / 60
	sec %= 60
	return fmt.Sprintf("%d day(s) %02d:%02d:%02d", day, hour, minute, sec)
}
