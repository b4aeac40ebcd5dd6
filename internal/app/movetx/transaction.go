package movetx

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
)

// State is the lifecycle position of a Transaction.
type State string

const (
	StatePending    State = "pending"
	StateCommitted  State = "committed"
	StateRolledBack State = "rolled_back"
)

// ErrRejected marks an update the remote task API answered but refused.
var ErrRejected = errors.New("update rejected by task service")

// Compile-time check that Transaction implements domain.Action.
var _ domain.Action = (*Transaction)(nil)

// Transaction is one optimistic move. It starts Pending with the move already
// applied to the board and ends exactly once in Committed or RolledBack.
type Transaction struct {
	id          string
	workspaceID string
	intent      board.MoveIntent
	before      board.Board
	moved       task.Task
	startedAt   time.Time
	mgr         *Manager

	// prev is the earlier transaction of the same task, if it was still
	// running when this one started. Persistence waits for it.
	prev      *Transaction
	stale     chan struct{}
	staleOnce sync.Once

	mu    sync.Mutex
	state State
	err   error
	done  chan struct{}
}

// ID returns the transaction's unique identifier.
func (tx *Transaction) ID() string { return tx.id }

// Intent returns the move this transaction applied.
func (tx *Transaction) Intent() board.MoveIntent { return tx.intent }

// Task returns the moved task as it was sent for persistence.
func (tx *Transaction) Task() task.Task { return tx.moved.Clone() }

// Before returns a copy of the board as it was right before the move.
func (tx *Transaction) Before() board.Board { return tx.before.Clone() }

// State returns the current lifecycle state.
func (tx *Transaction) State() State {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	return tx.state
}

// Err returns the persistence failure of a rolled back transaction.
func (tx *Transaction) Err() error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	return tx.err
}

// Done returns a channel that is closed once the transaction has committed
// or rolled back.
func (tx *Transaction) Done() <-chan struct{} { return tx.done }

// Wait blocks until the transaction completes or ctx is done. It returns the
// persistence error for a rolled back transaction.
func (tx *Transaction) Wait(ctx context.Context) error {
	select {
	case <-tx.done:
		return tx.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Superseded returns a channel that is closed once a newer move of the same
// task has been made.
func (tx *Transaction) Superseded() <-chan struct{} { return tx.stale }

// Execute persists the moved task through the task updater.
func (tx *Transaction) Execute(ctx context.Context) error {
	res, err := tx.mgr.updater.UpdateTask(ports.WithSuperseded(ctx, tx.stale), tx.moved)
	if err != nil {
		return fmt.Errorf("persisting task %s: %w", tx.moved.ID, err)
	}
	if !res.Success {
		if res.Message != "" {
			return fmt.Errorf("%w: %s", ErrRejected, res.Message)
		}
		return ErrRejected
	}
	return nil
}

// Rollback removes the optimistic move from the live board.
func (tx *Transaction) Rollback(ctx context.Context) error {
	return tx.mgr.rollback(ctx, tx)
}

// Description returns a human-readable summary for logging.
func (tx *Transaction) Description() string {
	return fmt.Sprintf("move %s", tx.intent)
}

func (tx *Transaction) supersede() {
	tx.staleOnce.Do(func() { close(tx.stale) })
}

// finish moves the transaction to its terminal state. It reports false if
// the transaction had already finished.
func (tx *Transaction) finish(state State, err error) bool {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.state != StatePending {
		return false
	}
	tx.state = state
	tx.err = err
	close(tx.done)
	return true
}
