package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"workio/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newCenter(ttl time.Duration) (*Center, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 9, 12, 8, 0, 0, 0, time.UTC)}
	c := New(zap.NewNop().Sugar(), ttl, 10*time.Millisecond)
	c.now = clock.Now
	return c, clock
}

func TestPublishAndExpire(t *testing.T) {
	c, clock := newCenter(3500 * time.Millisecond)

	first := c.Publish(entities.NotifySuccess, "Task added successfully!")
	clock.Advance(time.Second)
	c.Publish(entities.NotifyError, "Project PRJ-X not found.")

	active := c.Active()
	require.Len(t, active, 2)
	require.Equal(t, first.ID, active[0].ID)
	require.Equal(t, "Project PRJ-X not found.", active[1].Message)

	clock.Advance(3 * time.Second)
	active = c.Active()
	require.Len(t, active, 1)
	require.Equal(t, entities.NotifyError, active[0].Type)

	require.Equal(t, 1, c.evict())
}

func TestDismiss(t *testing.T) {
	c, _ := newCenter(time.Minute)

	n := c.Publish(entities.NotifyInfo, "hello")
	require.NoError(t, c.Dismiss(n.ID))
	require.Empty(t, c.Active())
	require.ErrorIs(t, c.Dismiss(n.ID), entities.ErrNotificationNotFound)
}

func TestJanitorEvictsAndStops(t *testing.T) {
	c, clock := newCenter(time.Second)
	ctx := context.Background()
	require.NoError(t, c.OnStart(ctx))

	c.Publish(entities.NotifyWarning, "short lived")
	clock.Advance(2 * time.Second)

	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return len(c.items) == 0
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, c.OnStop(ctx))
	require.NoError(t, c.OnStop(ctx))
}
