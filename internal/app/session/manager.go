package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/clubr/internal/app/catalog"
	"github.com/yigit/clubr/internal/pkg/apperrors"
)

// ManagerConfig controls session lifetime
type ManagerConfig struct {
	// IdleTTL is how long an untouched session survives. Zero disables expiry.
	IdleTTL time.Duration
	// SweepInterval is how often Run looks for expired sessions.
	SweepInterval time.Duration
	// OnExpire, when set, is called by Run for every session it evicts.
	OnExpire func(sessionID string)
}

type entry struct {
	store    *Store
	lastSeen time.Time
}

// Manager keeps the live session stores keyed by session id.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	catalog  *catalog.Catalog
	config   ManagerConfig
	now      func() time.Time
	logger   zerolog.Logger
	opts     []Option
}

// NewManager creates a manager whose sessions start from base.
func NewManager(base *catalog.Catalog, config ManagerConfig, logger zerolog.Logger, opts ...Option) *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		catalog:  base,
		config:   config,
		now:      time.Now,
		logger:   logger,
		opts:     opts,
	}
}

// Open starts a new session and returns its id and store.
func (m *Manager) Open() (string, *Store) {
	id := uuid.New().String()
	store := NewStore(m.catalog, m.opts...)

	m.mu.Lock()
	m.sessions[id] = &entry{store: store, lastSeen: m.now()}
	count := len(m.sessions)
	m.mu.Unlock()

	m.logger.Debug().Str("sessionID", id).Int("activeSessions", count).Msg("Session opened")
	return id, store
}

// Get returns the store for id and marks the session as used. An expired
// session is reported as not found but stays in place until Sweep evicts it.
func (m *Manager) Get(id string) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok || m.expired(e, m.now()) {
		return nil, apperrors.ErrSessionNotFound
	}
	e.lastSeen = m.now()
	return e.store, nil
}

// Close drops the session. Closing an unknown session is not an error.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	m.logger.Debug().Str("sessionID", id).Msg("Session closed")
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) expired(e *entry, now time.Time) bool {
	return m.config.IdleTTL > 0 && now.Sub(e.lastSeen) > m.config.IdleTTL
}

// Sweep removes every session idle for longer than the TTL and returns their ids.
func (m *Manager) Sweep() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var evicted []string
	for id, e := range m.sessions {
		if m.expired(e, now) {
			delete(m.sessions, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}

// Run sweeps expired sessions until ctx is cancelled.
func (m *Manager) Run(ctx context.Context) {
	if m.config.IdleTTL <= 0 || m.config.SweepInterval <= 0 {
		return
	}
	ticker := time.NewTicker(m.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			evicted := m.Sweep()
			if len(evicted) == 0 {
				continue
			}
			m.logger.Info().Int("count", len(evicted)).Msg("Expired idle sessions")
			if m.config.OnExpire != nil {
				for _, id := range evicted {
					m.config.OnExpire(id)
				}
			}
		}
	}
}
