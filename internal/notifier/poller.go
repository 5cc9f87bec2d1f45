// Package notifier polls the API for new notifications.
package notifier

import (
	"context"
	"sync"
	"time"

	"industry-flow/internal/entities"

	"go.uber.org/zap"
)

// DefaultInterval is the fixed polling period.
const DefaultInterval = 30 * time.Second

// Source lists notifications of the signed in user.
type Source interface {
	ListNotifications(ctx context.Context, unreadOnly bool) ([]entities.Notification, error)
}

// Handler receives each new notification once.
type Handler func(ctx context.Context, n entities.Notification)

// Poller checks a Source at a fixed interval and hands notifications it has
// not seen before to a Handler. There is no backoff: a failed poll is logged
// and the next tick tries again.
type Poller struct {
	source       Source
	log          *zap.SugaredLogger
	interval     time.Duration
	showExisting bool

	mu     sync.Mutex
	seen   map[string]struct{}
	primed bool
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval overrides DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithShowExisting makes the first poll deliver notifications that already exist.
func WithShowExisting(show bool) Option {
	return func(p *Poller) { p.showExisting = show }
}

// NewPoller constructs a Poller.
func NewPoller(source Source, log *zap.SugaredLogger, opts ...Option) *Poller {
	p := &Poller{
		source:   source,
		log:      log.Named("notifier"),
		interval: DefaultInterval,
		seen:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run polls immediately and then every interval until ctx is done.
func (p *Poller) Run(ctx context.Context, handle Handler) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if err := p.Poll(ctx, handle); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.log.Warnw("poll failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Poll runs a single check. The first successful check only records what is
// already there unless the poller shows existing notifications.
func (p *Poller) Poll(ctx context.Context, handle Handler) error {
	list, err := p.source.ListNotifications(ctx, true)
	if err != nil {
		return err
	}

	p.mu.Lock()
	deliver := p.primed || p.showExisting
	fresh := make([]entities.Notification, 0, len(list))
	// Listing is newest first; deliver oldest first.
	for i := len(list) - 1; i >= 0; i-- {
		n := list[i]
		if _, ok := p.seen[n.ID]; ok {
			continue
		}
		p.seen[n.ID] = struct{}{}
		if deliver {
			fresh = append(fresh, n)
		}
	}
	p.primed = true
	p.mu.Unlock()

	for _, n := range fresh {
		handle(ctx, n)
	}
	if len(fresh) > 0 {
		p.log.Debugw("delivered notifications", "count", len(fresh))
	}
	return nil
}

// Seen reports how many notification ids the poller has recorded.
func (p *Poller) Seen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}
