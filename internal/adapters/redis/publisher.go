// Package redis publishes board changes and move notifications to Redis
// pub/sub so other service instances and stream consumers can follow a
// workspace board. The latest board of each workspace is also cached under a
// snapshot key for late joiners.
//
// Channels, given the configured prefix (default "taskboard:"):
//
//	<prefix>board:<workspaceId>          board events
//	<prefix>notifications:<workspaceId>  notification events
//	<prefix>board:<workspaceId>:snapshot latest board event (string key)
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/events"
	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
)

var (
	_ ports.Notifier      = (*Publisher)(nil)
	_ ports.BoardListener = (*Publisher)(nil)
	_ ports.HealthChecker = (*Publisher)(nil)
)

const (
	defaultBuffer  = 256
	publishTimeout = 2 * time.Second
)

// ErrClosed is returned by Close when the publisher was already closed.
var ErrClosed = errors.New("redis publisher closed")

type message struct {
	channel     string
	snapshotKey string
	payload     []byte
}

// Publisher implements [ports.BoardListener] and [ports.Notifier] on top of
// Redis pub/sub. Both entry points only enqueue; a single worker goroutine
// performs the network calls in order. When the queue is full the event is
// dropped and a warning is logged.
type Publisher struct {
	client goredis.UniversalClient
	prefix string
	logger *slog.Logger

	queue chan message
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithBuffer sets the queue capacity.
func WithBuffer(n int) Option {
	return func(p *Publisher) {
		if n > 0 {
			p.queue = make(chan message, n)
		}
	}
}

// NewPublisher creates a Publisher and starts its worker. Call Close to stop
// it; queued events are flushed first.
func NewPublisher(client goredis.UniversalClient, prefix string, logger *slog.Logger, opts ...Option) *Publisher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Publisher{
		client: client,
		prefix: prefix,
		logger: logger,
		queue:  make(chan message, defaultBuffer),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	go p.run()
	return p
}

// BoardChannel returns the pub/sub channel carrying a workspace's board events.
func (p *Publisher) BoardChannel(workspaceID string) string {
	return p.prefix + "board:" + workspaceID
}

// NotificationChannel returns the pub/sub channel carrying a workspace's
// notification events.
func (p *Publisher) NotificationChannel(workspaceID string) string {
	return p.prefix + "notifications:" + workspaceID
}

// SnapshotKey returns the key holding a workspace's latest board event.
func (p *Publisher) SnapshotKey(workspaceID string) string {
	return p.BoardChannel(workspaceID) + ":snapshot"
}

// BoardChanged implements [ports.BoardListener].
func (p *Publisher) BoardChanged(change board.Change) {
	payload, err := json.Marshal(events.NewBoardEvent(&change))
	if err != nil {
		p.logger.Error("failed to encode board event",
			slog.String("operation", "BoardChanged"),
			slog.String("workspace_id", change.WorkspaceID),
			slog.Any("error", err),
		)
		return
	}
	p.enqueue(message{
		channel:     p.BoardChannel(change.WorkspaceID),
		snapshotKey: p.SnapshotKey(change.WorkspaceID),
		payload:     payload,
	})
}

// Notify implements [ports.Notifier].
func (p *Publisher) Notify(ctx context.Context, n ports.Notification) {
	payload, err := json.Marshal(events.NewNotificationEvent(&n))
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to encode notification",
			slog.String("operation", "Notify"),
			slog.String("workspace_id", n.WorkspaceID),
			slog.Any("error", err),
		)
		return
	}
	p.enqueue(message{
		channel: p.NotificationChannel(n.WorkspaceID),
		payload: payload,
	})
}

// Name implements [ports.HealthChecker].
func (p *Publisher) Name() string {
	return "redis"
}

// HealthCheck pings the Redis server.
func (p *Publisher) HealthCheck(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

// Close stops accepting events, waits for the queue to drain or ctx to end,
// and returns.
func (p *Publisher) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Publisher) enqueue(m message) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	select {
	case p.queue <- m:
	default:
		p.logger.Warn("redis publish queue full, dropping event",
			slog.String("channel", m.channel),
		)
	}
}

func (p *Publisher) run() {
	defer close(p.done)
	for m := range p.queue {
		p.publish(m)
	}
}

func (p *Publisher) publish(m message) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if m.snapshotKey != "" {
		if err := p.client.Set(ctx, m.snapshotKey, m.payload, 0).Err(); err != nil {
			p.logger.Error("failed to cache board snapshot",
				slog.String("operation", "publish"),
				slog.String("key", m.snapshotKey),
				slog.Any("error", err),
			)
		}
	}
	if err := p.client.Publish(ctx, m.channel, m.payload).Err(); err != nil {
		p.logger.Error("failed to publish event",
			slog.String("operation", "publish"),
			slog.String("channel", m.channel),
			slog.Any("error", err),
		)
	}
}
