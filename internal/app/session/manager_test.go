package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/yigit/clubr/internal/app/models"
	"github.com/yigit/clubr/internal/pkg/apperrors"
	"github.com/yigit/clubr/internal/seed"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestManager(ttl time.Duration) (*Manager, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)}
	m := NewManager(seed.DefaultCatalog(), ManagerConfig{IdleTTL: ttl, SweepInterval: time.Millisecond}, zerolog.Nop())
	m.now = clock.Now
	return m, clock
}

func TestManager_OpenAndGet(t *testing.T) {
	m, _ := newTestManager(time.Hour)

	id, store := m.Open()
	require.NotEmpty(t, id)
	assert.Equal(t, models.ScreenLogin, store.Screen())

	got, err := m.Get(id)
	require.NoError(t, err)
	assert.Same(t, store, got)
	assert.Equal(t, 1, m.Len())

	_, err = m.Get("missing")
	assert.True(t, errors.Is(err, apperrors.ErrSessionNotFound))
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	m, _ := newTestManager(0)

	idA, a := m.Open()
	idB, b := m.Open()
	require.NotEqual(t, idA, idB)

	a.ToggleFollow("1")
	club, _ := b.Snapshot().Club("1")
	assert.True(t, club.IsFollowing)
}

func TestManager_Close(t *testing.T) {
	m, _ := newTestManager(time.Hour)
	id, _ := m.Open()

	m.Close(id)
	m.Close(id)

	_, err := m.Get(id)
	assert.True(t, errors.Is(err, apperrors.ErrSessionNotFound))
	assert.Zero(t, m.Len())
}

func TestManager_IdleExpiry(t *testing.T) {
	m, clock := newTestManager(30 * time.Minute)
	stale, _ := m.Open()
	fresh, _ := m.Open()

	clock.Advance(20 * time.Minute)
	_, err := m.Get(fresh)
	require.NoError(t, err)

	clock.Advance(15 * time.Minute)
	_, err = m.Get(stale)
	assert.True(t, errors.Is(err, apperrors.ErrSessionNotFound))

	assert.Equal(t, []string{stale}, m.Sweep())
	assert.Empty(t, m.Sweep())
	clock.Advance(time.Hour)
	assert.Equal(t, []string{fresh}, m.Sweep())
	assert.Zero(t, m.Len())
}

func TestManager_ZeroTTLNeverExpires(t *testing.T) {
	m, clock := newTestManager(0)
	id, _ := m.Open()

	clock.Advance(24 * 365 * time.Hour)
	_, err := m.Get(id)
	assert.NoError(t, err)
	assert.Empty(t, m.Sweep())
}

func TestManager_RunStopsOnCancel(t *testing.T) {
	m, clock := newTestManager(time.Minute)
	m.Open()
	clock.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestManager_RunReportsExpiredSessions(t *testing.T) {
	m, clock := newTestManager(time.Minute)
	var mu sync.Mutex
	var expired []string
	m.config.OnExpire = func(id string) {
		mu.Lock()
		expired = append(expired, id)
		mu.Unlock()
	}
	id, _ := m.Open()
	clock.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(expired) == 1
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, []string{id}, expired)
}

func TestManager_ExpiredOnAccessStillReported(t *testing.T) {
	m, clock := newTestManager(time.Minute)
	var mu sync.Mutex
	var expired []string
	m.config.OnExpire = func(id string) {
		mu.Lock()
		expired = append(expired, id)
		mu.Unlock()
	}
	id, _ := m.Open()
	clock.Advance(2 * time.Minute)

	_, err := m.Get(id)
	require.True(t, errors.Is(err, apperrors.ErrSessionNotFound))
	_, err = m.Get(id)
	require.True(t, errors.Is(err, apperrors.ErrSessionNotFound), "access does not revive an expired session")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(expired) == 1
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, []string{id}, expired)
	assert.Zero(t, m.Len())
}

func TestManager_ConcurrentIntents(t *testing.T) {
	m, _ := newTestManager(time.Hour)
	id, _ := m.Open()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store, err := m.Get(id)
			if err != nil {
				return
			}
			store.ToggleFollow("3")
			_ = store.Snapshot().FollowedClubs()
		}()
	}
	wg.Wait()

	store, err := m.Get(id)
	require.NoError(t, err)
	club, _ := store.Snapshot().Club("3")
	assert.False(t, club.IsFollowing, "an even number of toggles restores the flag")
}
