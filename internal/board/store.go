package board

import (
	"sync"

	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
)

// Op names the kind of mutation that produced a Change.
type Op string

const (
	OpReplace Op = "replace"
	OpUpsert  Op = "upsert"
	OpRemove  Op = "remove"
	OpMove    Op = "move"
	OpRestore Op = "restore"
)

// Change describes one applied mutation. Version increases by one per
// mutation and Board is the state right after it.
type Change struct {
	WorkspaceID string
	Version     uint64
	Op          Op
	TaskID      string
	Board       Board
}

type subscriber struct {
	id int
	fn func(Change)
}

// Store owns the live board of one workspace. All methods are safe for
// concurrent use; each mutation is atomic and returns the board as it was
// before the mutation.
//
// Subscribers are called synchronously, in mutation order, after the store
// lock is released. A subscriber must not mutate the store from inside the
// callback; hand the work to another goroutine instead.
type Store struct {
	workspaceID string

	mu      sync.RWMutex
	board   Board
	version uint64
	subs    []subscriber
	nextSub int

	// emitMu serializes delivery so subscribers observe changes in order.
	emitMu sync.Mutex
}

// NewStore creates an empty store for a workspace.
func NewStore(workspaceID string) *Store {
	return &Store{workspaceID: workspaceID, board: New()}
}

// WorkspaceID returns the workspace the store belongs to.
func (s *Store) WorkspaceID() string {
	return s.workspaceID
}

// Snapshot returns a deep copy of the current board.
func (s *Store) Snapshot() Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone()
}

// Version returns the number of mutations applied so far.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// ReplaceAll discards the current board and rebuilds it from tasks.
func (s *Store) ReplaceAll(tasks []task.Task) Board {
	prev, _ := s.mutate(OpReplace, "", func(Board) (Board, error) {
		return FromTasks(tasks), nil
	})
	return prev
}

// Upsert inserts t or replaces the task with the same ID.
func (s *Store) Upsert(t task.Task) Board {
	prev, _ := s.mutate(OpUpsert, t.ID, func(b Board) (Board, error) {
		return b.Upsert(t), nil
	})
	return prev
}

// Remove deletes the task with the given ID, if present.
func (s *Store) Remove(id string) Board {
	prev, _ := s.mutate(OpRemove, id, func(b Board) (Board, error) {
		return b.Remove(id), nil
	})
	return prev
}

// MoveWithinLane reorders one lane. On error the board is left unchanged.
func (s *Store) MoveWithinLane(lane task.Status, from, to int) (Board, error) {
	return s.mutate(OpMove, "", func(b Board) (Board, error) {
		return b.MoveWithinLane(lane, from, to)
	})
}

// MoveAcrossLanes moves a task into another lane.
func (s *Store) MoveAcrossLanes(id string, target task.Status) (Board, error) {
	return s.mutate(OpMove, id, func(b Board) (Board, error) {
		return b.MoveAcrossLanes(id, target)
	})
}

// Apply performs a move intent atomically and returns the boards before and
// after it.
func (s *Store) Apply(m MoveIntent) (prev, next Board, err error) {
	prev, err = s.mutate(OpMove, m.TaskID, func(b Board) (Board, error) {
		var applyErr error
		next, applyErr = b.Apply(m)
		return next, applyErr
	})
	if err != nil {
		return prev, prev, err
	}
	return prev, next.Clone(), nil
}

// Restore installs b verbatim. It is used to roll back optimistic moves and
// refuses boards that break lane membership or ID uniqueness.
func (s *Store) Restore(b Board) error {
	if err := b.CheckInvariants(); err != nil {
		return err
	}
	_, err := s.mutate(OpRestore, "", func(Board) (Board, error) {
		return b.Clone(), nil
	})
	return err
}

// Subscribe registers fn for every future change and returns a function that
// removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) mutate(op Op, taskID string, fn func(Board) (Board, error)) (Board, error) {
	s.mu.Lock()
	prev := s.board
	next, err := fn(prev)
	if err != nil {
		s.mu.Unlock()
		return prev.Clone(), err
	}

	s.board = next
	s.version++
	change := Change{
		WorkspaceID: s.workspaceID,
		Version:     s.version,
		Op:          op,
		TaskID:      taskID,
	}
	subs := s.subs

	// Take the delivery lock before releasing the state lock so the next
	// mutation cannot overtake this one.
	s.emitMu.Lock()
	s.mu.Unlock()

	for _, sub := range subs {
		c := change
		c.Board = next.Clone()
		sub.fn(c)
	}
	s.emitMu.Unlock()

	return prev.Clone(), nil
}
