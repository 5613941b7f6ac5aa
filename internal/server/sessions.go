package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/username/date-picker/internal/picker"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned for unknown or expired picker ids
var ErrSessionNotFound = errors.New("picker session not found")

// session is one mounted widget. Its mutex serializes events so the picker
// sees exactly one handler at a time.
type session struct {
	mu       sync.Mutex
	id       string
	picker   *picker.Picker
	lastSeen time.Time

	// user-facing feedback from the last events
	startValue string
	endValue   string
	startError string
	endError   string
	dateError  string
	confirmed  string
}

// registry keeps sessions in memory until they sit idle past ttl
type registry struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	clock    func() time.Time
	logger   *zap.Logger
}

func newRegistry(ttl time.Duration, clock func() time.Time, logger *zap.Logger) *registry {
	return &registry{
		sessions: make(map[string]*session),
		ttl:      ttl,
		clock:    clock,
		logger:   logger,
	}
}

func (r *registry) create(p *picker.Picker) *session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()

	s := &session{
		id:       uuid.NewString(),
		picker:   p,
		lastSeen: r.clock(),
	}
	r.sessions[s.id] = s

	r.logger.Debug("Picker session created",
		zap.String("session", s.id),
		zap.Int("active", len(r.sessions)))

	return s
}

func (r *registry) get(id string) (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.lastSeen = r.clock()
	return s, nil
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// sweepLocked drops idle sessions; r.mu must be held
func (r *registry) sweepLocked() {
	now := r.clock()
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.ttl {
			delete(r.sessions, id)
			r.logger.Debug("Picker session expired", zap.String("session", id))
		}
	}
}
