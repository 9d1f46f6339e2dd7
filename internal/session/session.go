// Package session owns the single conversation the process holds with the
// model. Nothing here is persisted; the transcript dies with the process.
package session

import (
	"sync"
	"time"

	"github.com/roomiebot/roomie/internal/schema"
)

// Session is the append-only transcript of one conversation.
type Session struct {
	mu        sync.Mutex
	contents  []schema.Content
	createdAt time.Time
}

func newSession() *Session {
	return &Session{createdAt: time.Now()}
}

// Append adds one content to the transcript.
func (s *Session) Append(c schema.Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contents = append(s.contents, c)
}

// History returns a snapshot of the transcript.
func (s *Session) History() []schema.Content {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]schema.Content, len(s.contents))
	copy(out, s.contents)
	return out
}

// Len returns the number of contents in the transcript.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contents)
}

// CreatedAt reports when the session was bound.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}
