// Package notify keeps the feed of toast notifications shown by the dashboard.
package notify

import (
	"context"
	"sync"
	"time"

	"workio/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Center stores notifications until they expire or get dismissed.
type Center struct {
	log      *zap.SugaredLogger
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time

	mu    sync.Mutex
	items []entities.Notification

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New creates a Center. Call OnStart to run the janitor.
func New(log *zap.SugaredLogger, ttl, interval time.Duration) *Center {
	if interval <= 0 {
		interval = time.Second
	}
	return &Center{
		log:      log.Named("notify"),
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// OnStart launches the janitor goroutine evicting expired notifications.
func (c *Center) OnStart(_ context.Context) error {
	go c.janitor()
	return nil
}

// OnStop stops the janitor and waits for it to exit.
func (c *Center) OnStop(ctx context.Context) error {
	c.stopOnce.Do(func() { close(c.stop) })
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Center) janitor() {
	defer close(c.done)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			if n := c.evict(); n > 0 {
				c.log.Debugw("notifications expired", "count", n)
			}
		}
	}
}

// Publish appends a notification and returns it.
func (c *Center) Publish(typ entities.NotificationType, msg string) entities.Notification {
	now := c.now()
	n := entities.Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Message:   msg,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()
	return n
}

// Active returns live notifications, oldest first.
func (c *Center) Active() []entities.Notification {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]entities.Notification, 0, len(c.items))
	for _, n := range c.items {
		if now.Before(n.ExpiresAt) {
			out = append(out, n)
		}
	}
	return out
}

// Dismiss removes a notification before it expires.
func (c *Center) Dismiss(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return entities.ErrNotificationNotFound
}

func (c *Center) evict() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, n := range c.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	removed := len(c.items) - len(kept)
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = entities.Notification{}
	}
	c.items = kept
	return removed
}
