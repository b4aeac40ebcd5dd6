// Package movetx applies task moves optimistically and reconciles them with
// the remote task API.
//
// The Manager keeps two boards: the live board in the Store, which shows
// every move as soon as it is made, and a baseline holding only what the
// remote side has confirmed. A failed move is undone by rebuilding the live
// board from the baseline plus the moves that are still in flight, so one
// rollback never discards another move's optimistic state.
//
// Moves of the same task are persisted one at a time, in the order they were
// made, so the remote side and the baseline both end with the latest one.
package movetx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-sync/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
)

// DefaultPersistTimeout bounds one persistence call.
const DefaultPersistTimeout = 5 * time.Second

// Notification messages.
const (
	msgFailed = "Failed to update task status"
	msgError  = "Error updating task status"
)

// Option configures a Manager.
type Option func(*Manager)

// WithPersistTimeout sets the per-transaction persistence timeout.
func WithPersistTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithMetrics records move outcomes on the given instruments.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(m *Manager) { m.metrics = metrics }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// Manager runs move transactions against one workspace board.
type Manager struct {
	store    *board.Store
	updater  ports.TaskUpdater
	notifier ports.Notifier
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	tracer   trace.Tracer
	timeout  time.Duration
	now      func() time.Time

	mu       sync.Mutex
	baseline board.Board
	pending  []*Transaction
	// latest holds the most recent unfinished transaction per task ID.
	latest map[string]*Transaction

	wg sync.WaitGroup
}

// NewManager creates a Manager for store. The store's current content is
// taken as the confirmed baseline. A nil logger discards output.
func NewManager(store *board.Store, updater ports.TaskUpdater, notifier ports.Notifier, logger *slog.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Manager{
		store:    store,
		updater:  updater,
		notifier: notifier,
		logger:   logger,
		tracer:   otel.Tracer("github.com/jsamuelsen11/taskboard-sync/internal/app/movetx"),
		timeout:  DefaultPersistTimeout,
		now:      time.Now,
		baseline: store.Snapshot(),
		latest:   make(map[string]*Transaction),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Store returns the board store the manager writes to.
func (m *Manager) Store() *board.Store { return m.store }

// Baseline returns a copy of the last remotely confirmed board.
func (m *Manager) Baseline() board.Board {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.baseline.Clone()
}

// Pending returns the number of transactions still waiting for persistence.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Move applies intent to the live board and starts persisting it in the
// background. It returns a nil Transaction without error when there is
// nothing to do: the task is not on the board, or it was dropped onto its
// own position. The returned Transaction outlives ctx; persistence runs
// under its own timeout.
func (m *Manager) Move(ctx context.Context, intent board.MoveIntent) (*Transaction, error) {
	if err := intent.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	current := m.store.Snapshot()
	lane, idx, ok := current.Locate(intent.TaskID)
	if !ok {
		m.mu.Unlock()
		m.logger.DebugContext(ctx, "move aborted, task not on board",
			slog.String("workspace_id", m.store.WorkspaceID()),
			slog.String("task_id", intent.TaskID),
		)
		return nil, nil
	}
	intent.SourceLane, intent.SourceIndex = lane, idx
	if intent.IsNoop() || samePosition(current, lane, idx, intent) {
		m.mu.Unlock()
		return nil, nil
	}

	before, after, err := m.store.Apply(intent)
	if err != nil {
		m.mu.Unlock()
		return nil, fmt.Errorf("applying move: %w", err)
	}
	moved, _ := after.Task(intent.TaskID)

	tx := &Transaction{
		id:          uuid.NewString(),
		workspaceID: m.store.WorkspaceID(),
		intent:      intent,
		before:      before,
		moved:       moved,
		startedAt:   m.now(),
		mgr:         m,
		prev:        m.latest[intent.TaskID],
		stale:       make(chan struct{}),
		state:       StatePending,
		done:        make(chan struct{}),
	}
	if tx.prev != nil {
		tx.prev.supersede()
	}
	m.latest[intent.TaskID] = tx
	m.pending = append(m.pending, tx)
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "move applied",
		slog.String("workspace_id", tx.workspaceID),
		slog.String("transaction_id", tx.id),
		slog.String("task_id", intent.TaskID),
		slog.String("from", string(lane)),
		slog.String("to", string(intent.TargetLane)),
	)

	m.wg.Add(1)
	go m.persist(context.WithoutCancel(ctx), tx)

	return tx, nil
}

// Load installs freshly fetched tasks as the confirmed baseline. Moves still
// in flight are replayed on top so their optimistic state stays visible.
func (m *Manager) Load(ctx context.Context, tasks []task.Task) board.Board {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.baseline = board.FromTasks(tasks)
	if len(m.pending) == 0 {
		m.store.ReplaceAll(tasks)
		return m.store.Snapshot()
	}
	m.installLocked(ctx)
	return m.store.Snapshot()
}

// Upsert mirrors an external edit into both the baseline and the live board.
func (m *Manager) Upsert(ctx context.Context, t task.Task) (board.Board, error) {
	if err := t.Validate(); err != nil {
		return board.Board{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.baseline = m.baseline.Upsert(t)
	m.store.Upsert(t)
	m.logger.DebugContext(ctx, "task upserted",
		slog.String("workspace_id", m.store.WorkspaceID()),
		slog.String("task_id", t.ID),
	)
	return m.store.Snapshot(), nil
}

// Remove mirrors an external deletion into both the baseline and the live board.
func (m *Manager) Remove(ctx context.Context, id string) board.Board {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.baseline = m.baseline.Remove(id)
	m.store.Remove(id)
	m.logger.DebugContext(ctx, "task removed",
		slog.String("workspace_id", m.store.WorkspaceID()),
		slog.String("task_id", id),
	)
	return m.store.Snapshot()
}

// Wait blocks until every in-flight transaction has completed or ctx is done.
func (m *Manager) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) persist(ctx context.Context, tx *Transaction) {
	defer m.wg.Done()

	if tx.prev != nil {
		<-tx.prev.Done()
		tx.prev = nil
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	ctx, span := m.tracer.Start(ctx, "movetx.persist",
		trace.WithAttributes(
			attribute.String("workspace.id", tx.workspaceID),
			attribute.String("task.id", tx.intent.TaskID),
			attribute.String("transaction.id", tx.id),
			attribute.String("target.lane", string(tx.intent.TargetLane)),
		),
	)
	defer span.End()

	err := tx.Execute(ctx)
	if err == nil {
		m.commit(ctx, tx)
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	m.logger.ErrorContext(ctx, "move persistence failed, rolling back",
		slog.String("operation", "movetx.Persist"),
		slog.String("workspace_id", tx.workspaceID),
		slog.String("transaction_id", tx.id),
		slog.String("task_id", tx.intent.TaskID),
		slog.Any("error", err),
	)

	tx.mu.Lock()
	tx.err = err
	tx.mu.Unlock()
	if rbErr := tx.Rollback(ctx); rbErr != nil {
		m.logger.ErrorContext(ctx, "rollback failed",
			slog.String("operation", "movetx.Rollback"),
			slog.String("workspace_id", tx.workspaceID),
			slog.String("transaction_id", tx.id),
			slog.Any("error", rbErr),
		)
	}
}

func (m *Manager) commit(ctx context.Context, tx *Transaction) {
	m.mu.Lock()
	if next, err := m.baseline.Replay(tx.intent); err == nil {
		m.baseline = next
	} else {
		m.logger.DebugContext(ctx, "committed task no longer in baseline",
			slog.String("transaction_id", tx.id),
			slog.String("task_id", tx.intent.TaskID),
		)
	}
	m.removePendingLocked(tx)
	m.mu.Unlock()

	if tx.State() != StatePending {
		return
	}
	m.record(ctx, tx, "committed")

	msg := "Task moved to " + tx.intent.TargetLane.Label()
	if tx.intent.SameLane() {
		msg = "Task reordered in " + tx.intent.TargetLane.Label()
	}
	m.notify(ctx, tx, ports.LevelSuccess, msg)
	tx.finish(StateCommitted, nil)
}

func (m *Manager) rollback(ctx context.Context, tx *Transaction) error {
	m.mu.Lock()
	m.removePendingLocked(tx)
	err := m.installLocked(ctx)
	m.mu.Unlock()

	if tx.State() != StatePending {
		return err
	}
	m.record(ctx, tx, "rolled_back")

	cause := tx.Err()
	msg := msgError
	if errors.Is(cause, ErrRejected) {
		msg = msgFailed
	}
	m.notify(ctx, tx, ports.LevelError, msg)
	tx.finish(StateRolledBack, cause)
	return err
}

// installLocked rebuilds the live board from the baseline and the pending
// moves. m.mu must be held.
func (m *Manager) installLocked(ctx context.Context) error {
	rebuilt := m.baseline
	for _, p := range m.pending {
		next, err := rebuilt.Replay(p.intent)
		if err != nil {
			m.logger.DebugContext(ctx, "skipping pending move on rebuild",
				slog.String("transaction_id", p.id),
				slog.String("task_id", p.intent.TaskID),
				slog.Any("error", err),
			)
			continue
		}
		rebuilt = next
	}
	if err := m.store.Restore(rebuilt); err != nil {
		return fmt.Errorf("restoring board: %w", err)
	}
	return nil
}

func (m *Manager) removePendingLocked(tx *Transaction) {
	m.pending = slices.DeleteFunc(m.pending, func(p *Transaction) bool { return p == tx })
	if m.latest[tx.intent.TaskID] == tx {
		delete(m.latest, tx.intent.TaskID)
	}
}

func (m *Manager) notify(ctx context.Context, tx *Transaction, level ports.NotificationLevel, msg string) {
	if m.notifier == nil {
		return
	}
	m.notifier.Notify(ctx, ports.Notification{
		WorkspaceID:   tx.workspaceID,
		TaskID:        tx.intent.TaskID,
		TransactionID: tx.id,
		Level:         level,
		Message:       msg,
		Time:          m.now(),
	})
}

func (m *Manager) record(ctx context.Context, tx *Transaction, outcome string) {
	if m.metrics == nil {
		return
	}
	m.metrics.RecordMove(ctx, outcome, m.now().Sub(tx.startedAt))
}

// samePosition reports whether applying intent would leave the task where it is.
func samePosition(b board.Board, lane task.Status, idx int, intent board.MoveIntent) bool {
	if lane != intent.TargetLane {
		return false
	}
	last := len(b.Lane(lane)) - 1
	return min(intent.TargetIndex, last) == idx
}
