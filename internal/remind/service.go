// Package remind runs the time-based side of the assistant: one-shot
// reminders armed by the schedule_reminder tool, and the optional recurring
// cleaning-schedule announcement.
//
// Reminders are deliberately volatile: there is no persistence, listing, or
// cancellation. A process restart silently drops anything pending.
package remind

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	robfigcron "github.com/robfig/cron/v3"
)

// Notifier posts text to the chat room. The delivery gateway implements it.
type Notifier interface {
	Send(ctx context.Context, text string) bool
}

// Service owns the active reminder timers and the announcement cron entry.
type Service struct {
	notifier Notifier

	announceExpr string
	announceText func() string

	cron *robfigcron.Cron

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewService creates a Service delivering through notifier.
func NewService(notifier Notifier) *Service {
	return &Service{
		notifier: notifier,
		cron:     robfigcron.New(),
		timers:   make(map[string]*time.Timer),
	}
}

// SetAnnouncement configures the recurring cleaning-schedule post. expr is a
// five-field cron expression; text is evaluated at fire time. Must be called
// before Start.
func (s *Service) SetAnnouncement(expr string, text func() string) {
	s.announceExpr = expr
	s.announceText = text
}

// Schedule arms a one-shot reminder. A time in the past fires immediately.
// Timers are live from this call on, independent of Start.
func (s *Service) Schedule(at time.Time, message, user string) {
	id := uuid.NewString()
	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	s.timers[id] = time.AfterFunc(delay, func() { s.fire(id, message, user) })
	s.mu.Unlock()

	slog.Info("reminder scheduled", "at", at, "user", user)
}

// fire delivers one reminder and forgets it.
func (s *Service) fire(id, message, user string) {
	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()

	text := "⏰ Reminder: " + message
	if user != "" {
		text = fmt.Sprintf("⏰ Reminder for %s: %s", user, message)
	}
	if !s.notifier.Send(context.Background(), text) {
		slog.Warn("reminder delivery failed", "user", user)
	}
}

// Pending returns the number of armed reminders.
func (s *Service) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Start arms the announcement job if configured and blocks until ctx is
// cancelled, then stops the cron runner and every pending timer.
func (s *Service) Start(ctx context.Context) error {
	if s.announceExpr != "" && s.announceText != nil {
		if _, err := s.cron.AddFunc(s.announceExpr, s.announce); err != nil {
			return fmt.Errorf("invalid announcement cron %q: %w", s.announceExpr, err)
		}
		slog.Info("cleaning announcement armed", "cron", s.announceExpr)
	}
	s.cron.Start()

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.mu.Lock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()
	return ctx.Err()
}

func (s *Service) announce() {
	if !s.notifier.Send(context.Background(), "🧹 "+s.announceText()) {
		slog.Warn("announcement delivery failed")
	}
}
