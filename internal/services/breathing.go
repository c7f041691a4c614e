package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/xvierd/zenith/internal/domain"
	"github.com/xvierd/zenith/internal/ports"
	"github.com/xvierd/zenith/internal/xslog"
)

// BreathingCoach plays domain.BreathingPlan once per Start, publishing one
// domain.BreathFrame per step and a reset frame at the end.
type BreathingCoach struct {
	events   chan<- domain.TimerEvent
	interval time.Duration
	now      func() time.Time

	running atomic.Bool
}

// NewBreathingCoach creates a coach stepping every interval.
func NewBreathingCoach(events chan<- domain.TimerEvent, interval time.Duration) *BreathingCoach {
	if interval <= 0 {
		interval = time.Second
	}
	return &BreathingCoach{events: events, interval: interval, now: time.Now}
}

// Start begins a session unless one is already running.
func (b *BreathingCoach) Start(ctx context.Context) error {
	if !b.running.CompareAndSwap(false, true) {
		return domain.ErrBreathingInProgress
	}
	ctx = xslog.WithAttrs(ctx, xslog.Session("breathing"))
	xslog.FromContext(ctx).Debug("breathing started", xslog.Count(len(domain.BreathingPlan)))
	go b.run(ctx)
	return nil
}

// Running reports whether a session is in progress.
func (b *BreathingCoach) Running() bool {
	return b.running.Load()
}

func (b *BreathingCoach) run(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			xslog.FromContext(ctx).Error("breathing loop panicked", xslog.ErrorAny(r), xslog.Stack())
			b.running.Store(false)
			b.send(ctx, resetFrame())
		}
	}()

	visual := domain.RestingVisual()
	for _, phase := range domain.BreathingPlan {
		visual = b.enter(phase, visual)
		for n := phase.Seconds; n >= 1; n-- {
			frame := domain.BreathFrame{
				Phase:  phase.Phase,
				Count:  n,
				Status: domain.BreathStatus(phase.Label, n),
				Color:  phase.Color,
				Visual: visual,
			}
			if !b.send(ctx, frame) || !b.wait(ctx) {
				b.running.Store(false)
				return
			}
		}
	}

	// Clear the flag first so a start after the reset frame is accepted.
	b.running.Store(false)
	b.send(ctx, resetFrame())
}

// enter computes the circle for the start of a phase. Phases without a
// target scale only recolor the circle.
func (b *BreathingCoach) enter(phase domain.PhaseSpec, prev domain.BreathVisual) domain.BreathVisual {
	now := b.now()
	current := prev.ScaleAt(now)
	if phase.Scale == 0 {
		return domain.BreathVisual{
			FromScale: current,
			ToScale:   current,
			Color:     phase.Color,
			Opacity:   prev.Opacity,
			Easing:    domain.EaseInstant,
		}
	}
	return domain.BreathVisual{
		FromScale:  current,
		ToScale:    phase.Scale,
		Color:      phase.Color,
		Opacity:    phase.Opacity,
		Easing:     phase.Easing,
		Transition: time.Duration(phase.Seconds) * b.interval,
		StartedAt:  now,
	}
}

func (b *BreathingCoach) wait(ctx context.Context) bool {
	timer := time.NewTimer(b.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (b *BreathingCoach) send(ctx context.Context, ev domain.TimerEvent) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case b.events <- ev:
		return true
	}
}

func resetFrame() domain.BreathFrame {
	return domain.BreathFrame{
		Phase:  domain.PhaseReset,
		Status: domain.BreathReadyText,
		Color:  domain.BreathWhite,
		Visual: domain.RestingVisual(),
	}
}

var _ ports.Breather = (*BreathingCoach)(nil)
