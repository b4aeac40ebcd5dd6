package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/events"
	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
)

// Server-sent event names.
const (
	EventSnapshot     = "snapshot"
	EventBoard        = "board"
	EventNotification = "notification"
)

const (
	defaultHeartbeat    = 15 * time.Second
	defaultClientBuffer = 64
)

// Compile-time check that EventHub implements ports.Notifier.
var _ ports.Notifier = (*EventHub)(nil)

// EventHub tracks the open event streams of every workspace and forwards
// move notifications to them. It is the [ports.Notifier] side of the event
// stream; EventsHandler registers streams with it.
type EventHub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	streams map[string]map[*stream]struct{}
}

// NewEventHub creates an empty EventHub. A nil logger discards output.
func NewEventHub(logger *slog.Logger) *EventHub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EventHub{
		logger:  logger,
		streams: make(map[string]map[*stream]struct{}),
	}
}

// Notify implements ports.Notifier by forwarding the notification to every
// open stream of its workspace. It never blocks.
func (h *EventHub) Notify(ctx context.Context, n ports.Notification) {
	data, err := json.Marshal(events.NewNotificationEvent(&n))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to encode notification",
			slog.String("operation", "EventHub.Notify"),
			slog.Any("error", err),
		)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.streams[n.WorkspaceID] {
		s.send(sseEvent{name: EventNotification, data: data})
	}
}

// Streams returns the number of open streams of a workspace.
func (h *EventHub) Streams(workspaceID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.streams[workspaceID])
}

func (h *EventHub) register(s *stream) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.streams[s.workspaceID]
	if !ok {
		set = make(map[*stream]struct{})
		h.streams[s.workspaceID] = set
	}
	set[s] = struct{}{}
}

func (h *EventHub) unregister(s *stream) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.streams[s.workspaceID], s)
	if len(h.streams[s.workspaceID]) == 0 {
		delete(h.streams, s.workspaceID)
	}
}

// EventsHandler streams board changes and move notifications to views over
// server-sent events. Each stream opens with a snapshot event and then
// receives one board event per change and one notification event per move
// outcome of its workspace.
//
// A stream that falls behind by more than its buffer drops events. Every
// board event carries the full board, so after a drop the stream sends the
// newest dropped board change once it catches up. Board events older than
// one already written are skipped.
type EventsHandler struct {
	boards    ports.BoardService
	hub       *EventHub
	logger    *slog.Logger
	heartbeat time.Duration
	buffer    int
}

// EventsOption configures an EventsHandler.
type EventsOption func(*EventsHandler)

// WithHeartbeat sets the interval of keep-alive comments on idle streams.
func WithHeartbeat(d time.Duration) EventsOption {
	return func(h *EventsHandler) {
		if d > 0 {
			h.heartbeat = d
		}
	}
}

// WithClientBuffer sets how many events may queue per stream.
func WithClientBuffer(n int) EventsOption {
	return func(h *EventsHandler) {
		if n > 0 {
			h.buffer = n
		}
	}
}

// NewEventsHandler creates an EventsHandler that registers its streams with
// hub. A nil hub gets a private one. A nil logger discards output.
func NewEventsHandler(boards ports.BoardService, hub *EventHub, logger *slog.Logger, opts ...EventsOption) *EventsHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if hub == nil {
		hub = NewEventHub(logger)
	}
	h := &EventsHandler{
		boards:    boards,
		hub:       hub,
		logger:    logger,
		heartbeat: defaultHeartbeat,
		buffer:    defaultClientBuffer,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Stream handles GET /api/v1/boards/{workspaceId}/events.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ws := workspaceID(r)

	s := newStream(ws, h.buffer, h.logger)

	unsubscribe, err := h.boards.Subscribe(ctx, ws, s)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer unsubscribe()

	h.hub.register(s)
	defer h.hub.unregister(s)

	b, err := h.boards.GetBoard(ctx, ws)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	snapshot, err := json.Marshal(dto.ToBoardResponse(ws, b))
	if err != nil {
		dto.WriteErrorResponse(w, r, fmt.Errorf("encoding snapshot: %w", err))
		return
	}

	rc := http.NewResponseController(w)
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.logger.WarnContext(ctx, "failed to clear write deadline for event stream",
			slog.String("workspace_id", ws),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, rc, sseEvent{name: EventSnapshot, data: snapshot}); err != nil {
		h.logger.WarnContext(ctx, "event stream not supported",
			slog.String("workspace_id", ws),
			slog.Any("error", err),
		)
		return
	}

	h.logger.DebugContext(ctx, "event stream opened", slog.String("workspace_id", ws))
	defer func() {
		h.logger.DebugContext(context.WithoutCancel(ctx), "event stream closed",
			slog.String("workspace_id", ws),
			slog.Int64("dropped", s.dropped.Load()),
		)
	}()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	var last uint64
	write := func(ev sseEvent) error {
		if ev.version != 0 && ev.version <= last {
			return nil
		}
		if err := writeEvent(w, rc, ev); err != nil {
			return err
		}
		last = max(last, ev.version)
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.events:
			if err := write(ev); err != nil {
				return
			}
		case <-s.resync:
			ev, ok := s.catchUp()
			if !ok {
				continue
			}
			if err := write(ev); err != nil {
				return
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

type sseEvent struct {
	name    string
	data    []byte
	version uint64
}

// stream is one open event stream. It receives board changes as a
// ports.BoardListener.
type stream struct {
	workspaceID string
	events      chan sseEvent
	resync      chan struct{}
	dropped     atomic.Int64
	logger      *slog.Logger

	mu     sync.Mutex
	behind *board.Change
}

func newStream(workspaceID string, buffer int, logger *slog.Logger) *stream {
	return &stream{
		workspaceID: workspaceID,
		events:      make(chan sseEvent, buffer),
		resync:      make(chan struct{}, 1),
		logger:      logger,
	}
}

func (s *stream) BoardChanged(change board.Change) {
	data, err := json.Marshal(events.NewBoardEvent(&change))
	if err != nil {
		s.logger.Error("failed to encode board event",
			slog.String("operation", "stream.BoardChanged"),
			slog.String("workspace_id", s.workspaceID),
			slog.Any("error", err),
		)
		return
	}
	if s.send(sseEvent{name: EventBoard, data: data, version: change.Version}) {
		return
	}

	s.mu.Lock()
	if s.behind == nil || change.Version > s.behind.Version {
		s.behind = &change
	}
	s.mu.Unlock()
	select {
	case s.resync <- struct{}{}:
	default:
	}
}

// catchUp returns the newest dropped board change as an event and forgets
// it. It reports false when nothing is outstanding.
func (s *stream) catchUp() (sseEvent, bool) {
	s.mu.Lock()
	c := s.behind
	s.behind = nil
	s.mu.Unlock()
	if c == nil {
		return sseEvent{}, false
	}

	data, err := json.Marshal(events.NewBoardEvent(c))
	if err != nil {
		s.logger.Error("failed to encode board event",
			slog.String("operation", "stream.catchUp"),
			slog.String("workspace_id", s.workspaceID),
			slog.Any("error", err),
		)
		return sseEvent{}, false
	}
	return sseEvent{name: EventBoard, data: data, version: c.Version}, true
}

// send queues ev without blocking. It reports false when the queue is full
// and ev was dropped.
func (s *stream) send(ev sseEvent) bool {
	select {
	case s.events <- ev:
		return true
	default:
		if s.dropped.Add(1) == 1 {
			s.logger.Warn("event stream falling behind, dropping events",
				slog.String("workspace_id", s.workspaceID),
				slog.String("event", ev.name),
			)
		}
		return false
	}
}

func writeEvent(w http.ResponseWriter, rc *http.ResponseController, ev sseEvent) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.name, ev.data); err != nil {
		return err
	}
	return rc.Flush()
}
