// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/xvierd/zenith/internal/config"
	"github.com/xvierd/zenith/internal/ports"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig

	notify func(title, message string) error
	beep   func(freq float64, duration int) error
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg, notify: desktopNotify, beep: beeep.Beep}
}

func desktopNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Notify displays a desktop notification if enabled, beeping as well when
// sound is on.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}

	if err := n.notify(title, message); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	if n.cfg.Sound {
		if err := n.beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
			return fmt.Errorf("notification sound: %w", err)
		}
	}
	return nil
}

// NotifyMeditationComplete displays a notification when a meditation
// session ends.
func (n *Notifier) NotifyMeditationComplete(preset string) error {
	title := "🧘 Meditation Complete"
	message := fmt.Sprintf("Your %s session is complete. Take a breath.", preset)
	return n.Notify(title, message)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)
