// Package session tracks a single play-through of the maze: it moves from
// Playing to Won once and hands the win to the host UI as an asynchronous
// notice instead of stopping the frame loop.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// State is the session state
type State uint8

const (
	Playing State = iota
	Won
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Notice is sent once when a session is won
type Notice struct {
	SessionID uuid.UUID
	Elapsed   time.Duration
}

// Notifier is implemented by the host UI that presents a win
type Notifier interface {
	NotifyWin(n Notice)
}

// Session is safe for concurrent use
type Session struct {
	mu      sync.RWMutex
	id      uuid.UUID
	state   State
	started time.Time
	wonAt   time.Time

	// notices holds at most one pending win
	notices chan Notice

	now func() time.Time
	log logrus.FieldLogger
}

// New starts a session in the Playing state
func New(log logrus.FieldLogger) *Session {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	s := &Session{
		notices: make(chan Notice, 1),
		now:     time.Now,
		log:     log,
	}
	s.start()
	return s
}

func (s *Session) start() {
	s.id = uuid.New()
	s.state = Playing
	s.started = s.now()
	s.wonAt = time.Time{}
}

// Win moves the session to Won. It returns false if the session was already won.
// The notice is queued without blocking; the frame loop picks it up via Notices.
func (s *Session) Win() bool {
	s.mu.Lock()
	if s.state != Playing {
		s.mu.Unlock()
		return false
	}
	s.state = Won
	s.wonAt = s.now()
	n := Notice{SessionID: s.id, Elapsed: s.wonAt.Sub(s.started)}
	s.mu.Unlock()

	select {
	case s.notices <- n:
	default:
		// a previous session's notice was never read
		s.log.WithField("session", n.SessionID).Warn("Dropping win notice, queue full")
	}

	s.log.WithFields(logrus.Fields{
		"session": n.SessionID,
		"elapsed": n.Elapsed.Round(time.Millisecond),
	}).Info("Player reached the goal")
	return true
}

// Notices returns the channel win notices are delivered on
func (s *Session) Notices() <-chan Notice {
	return s.notices
}

// Reset starts a new session with a fresh id and returns it.
// A notice that was never read is discarded.
func (s *Session) Reset() uuid.UUID {
	select {
	case <-s.notices:
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.id
	s.start()
	s.log.WithFields(logrus.Fields{
		"previous": prev,
		"session":  s.id,
	}).Info("Session reset")
	return s.id
}

// ID returns the current session id
func (s *Session) ID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// State returns the current state
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Playing reports whether gameplay updates should run
func (s *Session) Playing() bool {
	return s.State() == Playing
}

// Elapsed returns the time since the session started, or the winning time once won
func (s *Session) Elapsed() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == Won {
		return s.wonAt.Sub(s.started)
	}
	return s.now().Sub(s.started)
}
