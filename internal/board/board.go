// Package board holds the lane-partitioned board value and the goroutine-safe
// store that owns the live copy of it.
package board

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
)

// Board is the ordered content of the three lanes. The zero value is an empty
// board. Methods never modify the receiver; mutating operations return a new
// Board that shares no memory with the old one.
type Board struct {
	lanes [3][]task.Task
}

// New returns an empty board.
func New() Board {
	var b Board
	for i := range b.lanes {
		b.lanes[i] = []task.Task{}
	}
	return b
}

// FromTasks partitions tasks by status into a new board. Invalid statuses are
// normalized to TODO, duplicate IDs keep their first occurrence, and every
// lane is sorted with task.Compare.
func FromTasks(tasks []task.Task) Board {
	b := New()
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		t = normalized(t)
		i := t.Status.Index()
		b.lanes[i] = append(b.lanes[i], t.Clone())
	}
	for i := range b.lanes {
		task.SortLane(b.lanes[i])
	}
	return b
}

// Lane returns the tasks of a lane in order. An invalid lane yields nil.
func (b Board) Lane(lane task.Status) []task.Task {
	i := lane.Index()
	if i < 0 {
		return nil
	}
	return b.lanes[i]
}

// Len returns the number of tasks across all lanes.
func (b Board) Len() int {
	n := 0
	for _, l := range b.lanes {
		n += len(l)
	}
	return n
}

// Tasks returns every task in lane order.
func (b Board) Tasks() []task.Task {
	out := make([]task.Task, 0, b.Len())
	for _, l := range b.lanes {
		out = append(out, l...)
	}
	return out
}

// Locate returns the lane and index of the task with the given ID.
func (b Board) Locate(id string) (task.Status, int, bool) {
	for i, lane := range task.Lanes() {
		if idx := slices.IndexFunc(b.lanes[i], func(t task.Task) bool { return t.ID == id }); idx >= 0 {
			return lane, idx, true
		}
	}
	return "", -1, false
}

// Task returns the task with the given ID.
func (b Board) Task(id string) (task.Task, bool) {
	lane, idx, ok := b.Locate(id)
	if !ok {
		return task.Task{}, false
	}
	return b.lanes[lane.Index()][idx], true
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	var out Board
	for i, l := range b.lanes {
		out.lanes[i] = make([]task.Task, len(l))
		for j, t := range l {
			out.lanes[i][j] = t.Clone()
		}
	}
	return out
}

// Equal reports whether two boards hold the same tasks in the same order.
func (b Board) Equal(o Board) bool {
	for i := range b.lanes {
		if !slices.EqualFunc(b.lanes[i], o.lanes[i], taskEqual) {
			return false
		}
	}
	return true
}

// CheckInvariants verifies that every task's status matches its lane and
// that no task ID appears more than once.
func (b Board) CheckInvariants() error {
	seen := make(map[string]task.Status, b.Len())
	for i, lane := range task.Lanes() {
		for _, t := range b.lanes[i] {
			if t.Status != lane {
				return fmt.Errorf("task %s has status %s but lives in lane %s: %w",
					t.ID, t.Status, lane, domain.ErrConflict)
			}
			if prev, dup := seen[t.ID]; dup {
				return fmt.Errorf("task %s appears in lanes %s and %s: %w",
					t.ID, prev, lane, domain.ErrConflict)
			}
			seen[t.ID] = lane
		}
	}
	return nil
}

// Upsert removes any task with t's ID and inserts t into the lane named by
// its (normalized) status, re-sorting that lane.
func (b Board) Upsert(t task.Task) Board {
	t = normalized(t)
	next := b.Remove(t.ID)
	i := t.Status.Index()
	next.lanes[i] = append(next.lanes[i], t.Clone())
	task.SortLane(next.lanes[i])
	return next
}

// Remove deletes the task with the given ID. Removing an absent ID returns an
// unchanged copy.
func (b Board) Remove(id string) Board {
	next := b.Clone()
	for i := range next.lanes {
		next.lanes[i] = slices.DeleteFunc(next.lanes[i], func(t task.Task) bool { return t.ID == id })
	}
	return next
}

// MoveWithinLane moves the task at index from to index to inside one lane,
// shifting the tasks in between. The lane is not re-sorted.
func (b Board) MoveWithinLane(lane task.Status, from, to int) (Board, error) {
	i := lane.Index()
	if i < 0 {
		return b, domain.NewValidationError("lane", fmt.Sprintf("invalid: %q", lane))
	}
	n := len(b.lanes[i])
	if from < 0 || from >= n {
		return b, domain.NewValidationError("from", fmt.Sprintf("index %d out of range [0,%d)", from, n))
	}
	if to < 0 || to >= n {
		return b, domain.NewValidationError("to", fmt.Sprintf("index %d out of range [0,%d)", to, n))
	}

	next := b.Clone()
	if from == to {
		return next, nil
	}
	moved := next.lanes[i][from]
	l := slices.Delete(next.lanes[i], from, from+1)
	next.lanes[i] = slices.Insert(l, to, moved)
	return next, nil
}

// MoveAcrossLanes removes the task from its lane, sets its status to target,
// inserts it into the target lane and re-sorts that lane.
func (b Board) MoveAcrossLanes(id string, target task.Status) (Board, error) {
	if !target.IsValid() {
		return b, domain.NewValidationError("lane", fmt.Sprintf("invalid: %q", target))
	}
	t, ok := b.Task(id)
	if !ok {
		return b, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	t.Status = target
	return b.Upsert(t), nil
}

// Apply performs a move intent against the board. The task is located by ID,
// so the intent's recorded source position only matters for deciding whether
// the move stays within a lane. A same-lane target index past the end of the
// lane means "drop at the end".
func (b Board) Apply(m MoveIntent) (Board, error) {
	lane, idx, ok := b.Locate(m.TaskID)
	if !ok {
		return b, fmt.Errorf("task %s: %w", m.TaskID, domain.ErrNotFound)
	}
	if lane != m.TargetLane {
		return b.MoveAcrossLanes(m.TaskID, m.TargetLane)
	}
	to := min(max(m.TargetIndex, 0), len(b.lanes[lane.Index()])-1)
	return b.MoveWithinLane(lane, idx, to)
}

// Replay re-applies a move that was already performed on another copy of the
// board. It dispatches on the intent's recorded source lane rather than the
// task's current one: a cross-lane move re-sorts the target lane even when
// the task already sits there.
func (b Board) Replay(m MoveIntent) (Board, error) {
	if m.SourceLane != "" && !m.SameLane() {
		return b.MoveAcrossLanes(m.TaskID, m.TargetLane)
	}
	return b.Apply(m)
}

func normalized(t task.Task) task.Task {
	if !t.Status.IsValid() {
		t.Status = task.Normalize(string(t.Status))
	}
	return t
}

func taskEqual(a, b task.Task) bool {
	if a.ID != b.ID || a.Title != b.Title || a.Description != b.Description ||
		a.Status != b.Status || a.Priority != b.Priority || a.WorkspaceID != b.WorkspaceID {
		return false
	}
	if a.Deadline == nil || b.Deadline == nil {
		return a.Deadline == nil && b.Deadline == nil
	}
	return a.Deadline.Equal(*b.Deadline)
}
