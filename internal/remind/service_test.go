package remind

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// collectingNotifier records sent texts, safely across goroutines.
type collectingNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (n *collectingNotifier) Send(_ context.Context, text string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, text)
	return true
}

func (n *collectingNotifier) snapshot() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.sent))
	copy(out, n.sent)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestScheduleFiresOnceAndForgets(t *testing.T) {
	n := &collectingNotifier{}
	s := NewService(n)

	s.Schedule(time.Now().Add(20*time.Millisecond), "take out the trash", "Bob")
	if s.Pending() != 1 {
		t.Fatalf("expected 1 pending, got %d", s.Pending())
	}

	waitFor(t, func() bool { return len(n.snapshot()) == 1 })
	got := n.snapshot()[0]
	if got != "⏰ Reminder for Bob: take out the trash" {
		t.Errorf("unexpected reminder text: %q", got)
	}
	waitFor(t, func() bool { return s.Pending() == 0 })
}

func TestScheduleWithoutUser(t *testing.T) {
	n := &collectingNotifier{}
	s := NewService(n)

	s.Schedule(time.Now().Add(10*time.Millisecond), "rent is due", "")
	waitFor(t, func() bool { return len(n.snapshot()) == 1 })
	if got := n.snapshot()[0]; got != "⏰ Reminder: rent is due" {
		t.Errorf("unexpected reminder text: %q", got)
	}
}

func TestPastTimeFiresImmediately(t *testing.T) {
	n := &collectingNotifier{}
	s := NewService(n)

	s.Schedule(time.Now().Add(-time.Hour), "overdue", "")
	waitFor(t, func() bool { return len(n.snapshot()) == 1 })
}

func TestStartStopsPendingTimers(t *testing.T) {
	n := &collectingNotifier{}
	s := NewService(n)
	s.Schedule(time.Now().Add(time.Hour), "far away", "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	if err := <-done; err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if s.Pending() != 0 {
		t.Errorf("expected timers stopped, %d pending", s.Pending())
	}
}

func TestInvalidAnnouncementCron(t *testing.T) {
	s := NewService(&collectingNotifier{})
	s.SetAnnouncement("not a cron", func() string { return "x" })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := s.Start(ctx); err == nil || strings.Contains(err.Error(), "context") {
		t.Errorf("expected cron parse error, got %v", err)
	}
}
