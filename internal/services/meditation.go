package services

import (
	"context"
	"sync"
	"time"

	"github.com/xvierd/zenith/internal/domain"
	"github.com/xvierd/zenith/internal/ports"
	"github.com/xvierd/zenith/internal/xslog"
)

// MeditationTimer counts a meditation session down and publishes
// domain.MeditationTick values. Starting a session cancels the previous one
// and waits for its goroutine to exit, so after Start returns only the new
// session can publish. Sessions log through the logger carried by the
// context passed to Start.
type MeditationTimer struct {
	events   chan<- domain.TimerEvent
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewMeditationTimer creates a timer publishing on events every interval.
func NewMeditationTimer(events chan<- domain.TimerEvent, interval time.Duration) *MeditationTimer {
	if interval <= 0 {
		interval = time.Second
	}
	return &MeditationTimer{events: events, interval: interval}
}

// Start begins a countdown of seconds and returns its token.
func (t *MeditationTimer) Start(ctx context.Context, seconds int) domain.SessionToken {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()

	token := domain.NewSessionToken()
	sessionCtx, cancel := context.WithCancel(
		xslog.WithAttrs(ctx, xslog.Session("meditation"), xslog.Token(string(token))))
	done := make(chan struct{})
	t.cancel, t.done = cancel, done

	go t.run(sessionCtx, token, seconds, done)

	xslog.FromContext(sessionCtx).Debug("meditation started", xslog.Count(seconds))
	return token
}

// Stop cancels the running session and waits for it to exit.
func (t *MeditationTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *MeditationTimer) stopLocked() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.cancel, t.done = nil, nil
}

func (t *MeditationTimer) run(ctx context.Context, token domain.SessionToken, seconds int, done chan struct{}) {
	defer close(done)
	defer func() {
		if r := recover(); r != nil {
			xslog.FromContext(ctx).Error("meditation loop panicked", xslog.ErrorAny(r), xslog.Stack())
		}
	}()

	remaining := max(seconds, 0)
	if !t.send(ctx, domain.MeditationTick{Token: token, Remaining: remaining, Done: remaining == 0}) {
		return
	}
	if remaining == 0 {
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for remaining > 0 {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		remaining--
		if !t.send(ctx, domain.MeditationTick{Token: token, Remaining: remaining, Done: remaining == 0}) {
			return
		}
	}
}

func (t *MeditationTimer) send(ctx context.Context, ev domain.TimerEvent) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case t.events <- ev:
		return true
	}
}

var _ ports.MeditationCountdown = (*MeditationTimer)(nil)
