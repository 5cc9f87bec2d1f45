// Package notify fans stored notifications out to delivery channels.
package notify

import (
	"context"
	"sync"
	"time"

	"industry-flow/internal/entities"

	"go.uber.org/zap"
)

const defaultSendTimeout = 30 * time.Second

// Sender delivers a notification over one channel.
type Sender interface {
	Name() string
	Send(ctx context.Context, n entities.Notification) error
}

// Dispatcher routes notifications to registered senders.
type Dispatcher struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	timeout time.Duration
	async   bool

	mu      sync.RWMutex
	senders []Sender
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher. Sends run in goroutines when async is set
// and are bounded by timeout each.
func NewDispatcher(ctx context.Context, log *zap.SugaredLogger, async bool, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &Dispatcher{
		ctx:     ctx,
		log:     log.Named("notify"),
		timeout: timeout,
		async:   async,
		senders: make([]Sender, 0),
	}
}

// Register adds a sender.
func (d *Dispatcher) Register(sender Sender) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.senders = append(d.senders, sender)
}

// HasSenders returns true if any senders are registered.
func (d *Dispatcher) HasSenders() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.senders) > 0
}

// Dispatch hands n to every registered sender.
func (d *Dispatcher) Dispatch(n entities.Notification) {
	d.mu.RLock()
	senders := make([]Sender, len(d.senders))
	copy(senders, d.senders)
	d.mu.RUnlock()

	for _, sender := range senders {
		if d.async {
			d.wg.Add(1)
			go func(s Sender) {
				defer d.wg.Done()
				d.sendWithRecover(s, n)
			}(sender)
			continue
		}
		d.sendWithRecover(sender, n)
	}
}

// Wait blocks until in-flight sends finish or ctx ends.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) sendWithRecover(sender Sender, n entities.Notification) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Errorw("panic in sender", "sender", sender.Name(), "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(d.ctx), d.timeout)
	defer cancel()

	if err := sender.Send(ctx, n); err != nil {
		d.log.Warnw("notification delivery failed", "sender", sender.Name(), "notification_id", n.ID, "error", err)
		return
	}
	d.log.Debugw("notification delivered", "sender", sender.Name(), "notification_id", n.ID)
}
