package movetx

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
	"github.com/jsamuelsen11/taskboard-sync/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// notes collects notifications delivered through a mock notifier.
type notes struct {
	mu   sync.Mutex
	list []ports.Notification
}

func (n *notes) all() []ports.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ports.Notification(nil), n.list...)
}

func recordingNotifier(t *testing.T) (*mocks.MockNotifier, *notes) {
	t.Helper()
	n := &notes{}
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).
		Run(func(_ context.Context, note ports.Notification) {
			n.mu.Lock()
			n.list = append(n.list, note)
			n.mu.Unlock()
		}).Maybe()
	return notifier, n
}

func newStore(tasks ...task.Task) *board.Store {
	s := board.NewStore("ws-1")
	s.ReplaceAll(tasks)
	return s
}

func scenarioTasks() []task.Task {
	return []task.Task{
		{ID: "A", Title: "A", Status: task.StatusTodo, WorkspaceID: "ws-1"},
		{ID: "B", Title: "B", Status: task.StatusOngoing, WorkspaceID: "ws-1"},
	}
}

func waitTx(t *testing.T, tx *Transaction) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	select {
	case <-tx.Done():
	case <-ctx.Done():
		t.Fatal("transaction did not complete")
	}
}

func laneIDs(b board.Board, lane task.Status) []string {
	var out []string
	for _, t := range b.Lane(lane) {
		out = append(out, t.ID)
	}
	return out
}

func TestManager_Move_Commits(t *testing.T) {
	t.Parallel()

	store := newStore(scenarioTasks()...)
	updater := mocks.NewMockTaskUpdater(t)
	notifier, got := recordingNotifier(t)
	m := NewManager(store, updater, notifier, discardLogger())

	updater.EXPECT().
		UpdateTask(mock.Anything, mock.MatchedBy(func(tk task.Task) bool {
			return tk.ID == "A" && tk.Status == task.StatusOngoing
		})).
		Return(ports.UpdateResult{Success: true}, nil).
		Once()

	tx, err := m.Move(context.Background(), board.MoveIntent{
		TaskID:      "A",
		SourceLane:  task.StatusTodo,
		SourceIndex: 0,
		TargetLane:  task.StatusOngoing,
		TargetIndex: 0,
		OverTaskID:  "B",
	})
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if tx == nil {
		t.Fatal("Move() returned nil transaction")
	}

	// Applied optimistically before persistence completes.
	snap := store.Snapshot()
	if ids := laneIDs(snap, task.StatusOngoing); len(ids) != 2 {
		t.Fatalf("ONGOING after move = %v, want two tasks", ids)
	}

	if err := tx.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if tx.State() != StateCommitted {
		t.Errorf("State() = %s, want %s", tx.State(), StateCommitted)
	}

	final := store.Snapshot()
	if err := final.CheckInvariants(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
	if ids := laneIDs(final, task.StatusTodo); len(ids) != 0 {
		t.Errorf("TODO = %v, want empty", ids)
	}
	moved, _ := final.Task("A")
	if moved.Status != task.StatusOngoing {
		t.Errorf("A status = %s, want ONGOING", moved.Status)
	}
	if !m.Baseline().Equal(final) {
		t.Errorf("baseline not advanced to committed board")
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", m.Pending())
	}

	n := got.all()
	if len(n) != 1 || n[0].Message != "Task moved to Ongoing" || n[0].Level != ports.LevelSuccess {
		t.Errorf("notifications = %+v, want one success 'Task moved to Ongoing'", n)
	}
}

func TestManager_Move_RollsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		result  ports.UpdateResult
		err     error
		wantMsg string
	}{
		{
			name:    "transport error",
			err:     domain.ErrUnavailable,
			wantMsg: "Error updating task status",
		},
		{
			name:    "rejected by remote",
			result:  ports.UpdateResult{Success: false, Message: "locked"},
			wantMsg: "Failed to update task status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newStore(scenarioTasks()...)
			before := store.Snapshot()
			updater := mocks.NewMockTaskUpdater(t)
			notifier, got := recordingNotifier(t)
			m := NewManager(store, updater, notifier, discardLogger())

			updater.EXPECT().UpdateTask(mock.Anything, mock.Anything).Return(tt.result, tt.err).Once()

			tx, err := m.Move(context.Background(), board.MoveIntent{
				TaskID: "A", SourceLane: task.StatusTodo, TargetLane: task.StatusDone,
			})
			if err != nil {
				t.Fatalf("Move() error = %v", err)
			}

			waitErr := tx.Wait(context.Background())
			if waitErr == nil {
				t.Fatal("Wait() error = nil, want persistence error")
			}
			if tt.err != nil && !errors.Is(waitErr, tt.err) {
				t.Errorf("Wait() error = %v, want %v", waitErr, tt.err)
			}
			if tt.err == nil && !errors.Is(waitErr, ErrRejected) {
				t.Errorf("Wait() error = %v, want ErrRejected", waitErr)
			}
			if tx.State() != StateRolledBack {
				t.Errorf("State() = %s, want %s", tx.State(), StateRolledBack)
			}
			if !store.Snapshot().Equal(before) {
				t.Errorf("board after rollback differs from pre-move board")
			}
			if !tx.Before().Equal(before) {
				t.Errorf("Before() differs from pre-move board")
			}

			n := got.all()
			if len(n) != 1 {
				t.Fatalf("got %d notifications, want exactly 1: %+v", len(n), n)
			}
			if n[0].Message != tt.wantMsg || n[0].Level != ports.LevelError {
				t.Errorf("notification = %+v, want error %q", n[0], tt.wantMsg)
			}
		})
	}
}

func TestManager_Move_Noops(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		intent board.MoveIntent
	}{
		{
			name:   "dropped onto itself",
			intent: board.MoveIntent{TaskID: "A", SourceLane: task.StatusTodo, TargetLane: task.StatusTodo, TargetIndex: 0, OverTaskID: "A"},
		},
		{
			name:   "same lane same index",
			intent: board.MoveIntent{TaskID: "B", TargetLane: task.StatusOngoing, TargetIndex: 0},
		},
		{
			name:   "lane end of a single-task lane",
			intent: board.MoveIntent{TaskID: "A", TargetLane: task.StatusTodo, TargetIndex: 4},
		},
		{
			name:   "task not on board",
			intent: board.MoveIntent{TaskID: "ghost", TargetLane: task.StatusDone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newStore(scenarioTasks()...)
			before := store.Snapshot()
			version := store.Version()
			// No expectations: any persistence or notification call fails the test.
			m := NewManager(store, mocks.NewMockTaskUpdater(t), mocks.NewMockNotifier(t), discardLogger())

			tx, err := m.Move(context.Background(), tt.intent)
			if err != nil {
				t.Fatalf("Move() error = %v", err)
			}
			if tx != nil {
				t.Fatalf("Move() = %v, want nil transaction", tx.ID())
			}
			if !store.Snapshot().Equal(before) || store.Version() != version {
				t.Errorf("board changed on a no-op move")
			}
		})
	}
}

func TestManager_Move_InvalidIntent(t *testing.T) {
	t.Parallel()

	m := NewManager(newStore(scenarioTasks()...), mocks.NewMockTaskUpdater(t), nil, nil)

	_, err := m.Move(context.Background(), board.MoveIntent{TaskID: "A", TargetLane: "Backlog"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Move() error = %v, want ErrValidation", err)
	}
}

func TestManager_Move_WithinLaneReorder(t *testing.T) {
	t.Parallel()

	store := newStore(
		task.Task{ID: "1", Title: "1", Status: task.StatusTodo},
		task.Task{ID: "2", Title: "2", Status: task.StatusTodo},
		task.Task{ID: "3", Title: "3", Status: task.StatusTodo},
	)
	updater := mocks.NewMockTaskUpdater(t)
	notifier, got := recordingNotifier(t)
	m := NewManager(store, updater, notifier, discardLogger())

	updater.EXPECT().UpdateTask(mock.Anything, mock.Anything).Return(ports.UpdateResult{Success: true}, nil).Once()

	tx, err := m.Move(context.Background(), board.MoveIntent{
		TaskID: "3", SourceLane: task.StatusTodo, SourceIndex: 2, TargetLane: task.StatusTodo, TargetIndex: 0, OverTaskID: "1",
	})
	if err != nil || tx == nil {
		t.Fatalf("Move() = %v, %v", tx, err)
	}
	waitTx(t, tx)

	ids := laneIDs(store.Snapshot(), task.StatusTodo)
	want := []string{"3", "1", "2"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("TODO = %v, want %v", ids, want)
		}
	}
	if n := got.all(); len(n) != 1 || n[0].Message != "Task reordered in To Do" {
		t.Errorf("notifications = %+v", n)
	}
}

// gate blocks UpdateTask for one task until released with a result.
type gate struct {
	release chan error
}

func TestManager_OverlappingMoves(t *testing.T) {
	t.Parallel()

	orders := []struct {
		name      string
		failFirst bool
	}{
		{name: "failing move completes first", failFirst: true},
		{name: "successful move completes first", failFirst: false},
	}

	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newStore(
				task.Task{ID: "A", Title: "A", Status: task.StatusTodo},
				task.Task{ID: "B", Title: "B", Status: task.StatusTodo},
				task.Task{ID: "C", Title: "C", Status: task.StatusDone},
			)
			updater := mocks.NewMockTaskUpdater(t)
			notifier, got := recordingNotifier(t)
			m := NewManager(store, updater, notifier, discardLogger())

			gates := map[string]*gate{
				"A": {release: make(chan error)},
				"B": {release: make(chan error)},
			}
			updater.EXPECT().UpdateTask(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, tk task.Task) (ports.UpdateResult, error) {
					select {
					case err := <-gates[tk.ID].release:
						return ports.UpdateResult{Success: err == nil}, err
					case <-ctx.Done():
						return ports.UpdateResult{}, ctx.Err()
					}
				}).Times(2)

			txA, err := m.Move(context.Background(), board.MoveIntent{TaskID: "A", TargetLane: task.StatusOngoing})
			if err != nil || txA == nil {
				t.Fatalf("Move(A) = %v, %v", txA, err)
			}
			txB, err := m.Move(context.Background(), board.MoveIntent{TaskID: "B", TargetLane: task.StatusDone})
			if err != nil || txB == nil {
				t.Fatalf("Move(B) = %v, %v", txB, err)
			}
			if m.Pending() != 2 {
				t.Fatalf("Pending() = %d, want 2", m.Pending())
			}

			failA := func() {
				gates["A"].release <- domain.ErrUnavailable
				waitTx(t, txA)
			}
			commitB := func() {
				gates["B"].release <- nil
				waitTx(t, txB)
			}

			if tt.failFirst {
				failA()
				// B's optimistic move must survive A's rollback.
				mid := store.Snapshot()
				if lane, _, _ := mid.Locate("B"); lane != task.StatusDone {
					t.Errorf("B lane after A rollback = %s, want DONE", lane)
				}
				if lane, _, _ := mid.Locate("A"); lane != task.StatusTodo {
					t.Errorf("A lane after rollback = %s, want TODO", lane)
				}
				commitB()
			} else {
				commitB()
				failA()
			}

			final := store.Snapshot()
			if err := final.CheckInvariants(); err != nil {
				t.Fatalf("invariants: %v", err)
			}
			if lane, _, _ := final.Locate("A"); lane != task.StatusTodo {
				t.Errorf("A lane = %s, want TODO", lane)
			}
			if lane, _, _ := final.Locate("B"); lane != task.StatusDone {
				t.Errorf("B lane = %s, want DONE", lane)
			}
			if len(final.Lane(task.StatusOngoing)) != 0 {
				t.Errorf("ONGOING = %v, want empty", laneIDs(final, task.StatusOngoing))
			}
			if !m.Baseline().Equal(final) {
				t.Errorf("baseline differs from final board")
			}
			if txA.State() != StateRolledBack || txB.State() != StateCommitted {
				t.Errorf("states = %s/%s, want rolled_back/committed", txA.State(), txB.State())
			}

			var failures int
			for _, n := range got.all() {
				if n.Level == ports.LevelError {
					failures++
				}
			}
			if failures != 1 {
				t.Errorf("failure notifications = %d, want 1", failures)
			}
		})
	}
}

func TestManager_SameTaskMovesPersistInOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		releaseLater bool
		firstErr     error
		secondErr    error
		wantLane     task.Status
	}{
		{name: "both commit in order", wantLane: task.StatusDone},
		{name: "both commit, later move released first", releaseLater: true, wantLane: task.StatusDone},
		{name: "earlier move fails", firstErr: domain.ErrUnavailable, wantLane: task.StatusDone},
		{name: "later move fails", secondErr: domain.ErrUnavailable, wantLane: task.StatusOngoing},
		{name: "later move fails, released first", releaseLater: true, secondErr: domain.ErrUnavailable, wantLane: task.StatusOngoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newStore(
				task.Task{ID: "A", Title: "A", Status: task.StatusTodo},
				task.Task{ID: "D1", Title: "D1", Status: task.StatusOngoing},
				task.Task{ID: "X", Title: "X", Status: task.StatusTodo},
			)
			updater := mocks.NewMockTaskUpdater(t)
			notifier, _ := recordingNotifier(t)
			m := NewManager(store, updater, notifier, discardLogger())

			gates := map[string]chan error{
				"A/" + string(task.StatusOngoing): make(chan error, 1),
				"A/" + string(task.StatusDone):    make(chan error, 1),
				"X/" + string(task.StatusDone):    make(chan error, 1),
			}
			var (
				mu    sync.Mutex
				calls []string
			)
			updater.EXPECT().UpdateTask(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, tk task.Task) (ports.UpdateResult, error) {
					key := tk.ID + "/" + string(tk.Status)
					mu.Lock()
					calls = append(calls, key)
					mu.Unlock()
					select {
					case err := <-gates[key]:
						return ports.UpdateResult{Success: err == nil}, err
					case <-ctx.Done():
						return ports.UpdateResult{}, ctx.Err()
					}
				}).Times(3)

			first, err := m.Move(context.Background(), board.MoveIntent{TaskID: "A", TargetLane: task.StatusOngoing})
			if err != nil || first == nil {
				t.Fatalf("Move(A to ONGOING) = %v, %v", first, err)
			}
			second, err := m.Move(context.Background(), board.MoveIntent{TaskID: "A", TargetLane: task.StatusDone})
			if err != nil || second == nil {
				t.Fatalf("Move(A to DONE) = %v, %v", second, err)
			}

			select {
			case <-first.Superseded():
			default:
				t.Error("earlier move not marked superseded")
			}
			select {
			case <-second.Superseded():
				t.Error("latest move marked superseded")
			default:
			}

			if tt.releaseLater {
				gates["A/"+string(task.StatusDone)] <- tt.secondErr
				gates["A/"+string(task.StatusOngoing)] <- tt.firstErr
			} else {
				gates["A/"+string(task.StatusOngoing)] <- tt.firstErr
				gates["A/"+string(task.StatusDone)] <- tt.secondErr
			}
			waitTx(t, first)
			waitTx(t, second)

			mu.Lock()
			order := append([]string(nil), calls...)
			mu.Unlock()
			if len(order) != 2 || order[0] != "A/ONGOING" || order[1] != "A/DONE" {
				t.Fatalf("update order = %v, want [A/ONGOING A/DONE]", order)
			}

			live := store.Snapshot()
			if lane, _, _ := live.Locate("A"); lane != tt.wantLane {
				t.Errorf("A lane = %s, want %s", lane, tt.wantLane)
			}
			if !m.Baseline().Equal(live) {
				t.Errorf("baseline differs from live board after both moves settled")
			}

			// An unrelated failing move must not drag A back.
			gates["X/"+string(task.StatusDone)] <- domain.ErrUnavailable
			other, err := m.Move(context.Background(), board.MoveIntent{TaskID: "X", TargetLane: task.StatusDone})
			if err != nil || other == nil {
				t.Fatalf("Move(X) = %v, %v", other, err)
			}
			waitTx(t, other)

			after := store.Snapshot()
			if lane, _, _ := after.Locate("A"); lane != tt.wantLane {
				t.Errorf("A lane after unrelated rollback = %s, want %s", lane, tt.wantLane)
			}
			if lane, _, _ := after.Locate("X"); lane != task.StatusTodo {
				t.Errorf("X lane = %s, want TODO", lane)
			}
			if err := after.CheckInvariants(); err != nil {
				t.Fatalf("invariants: %v", err)
			}
		})
	}
}

func TestManager_PersistTimeout(t *testing.T) {
	t.Parallel()

	store := newStore(scenarioTasks()...)
	before := store.Snapshot()
	updater := mocks.NewMockTaskUpdater(t)
	notifier, got := recordingNotifier(t)
	m := NewManager(store, updater, notifier, discardLogger(), WithPersistTimeout(20*time.Millisecond))

	updater.EXPECT().UpdateTask(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ task.Task) (ports.UpdateResult, error) {
			<-ctx.Done()
			return ports.UpdateResult{}, ctx.Err()
		}).Once()

	// The request context is canceled right away; persistence must not be.
	ctx, cancel := context.WithCancel(context.Background())
	tx, err := m.Move(ctx, board.MoveIntent{TaskID: "A", TargetLane: task.StatusDone})
	cancel()
	if err != nil || tx == nil {
		t.Fatalf("Move() = %v, %v", tx, err)
	}

	waitTx(t, tx)
	if !errors.Is(tx.Err(), context.DeadlineExceeded) {
		t.Errorf("Err() = %v, want DeadlineExceeded", tx.Err())
	}
	if !store.Snapshot().Equal(before) {
		t.Errorf("board not rolled back after timeout")
	}
	if n := got.all(); len(n) != 1 || n[0].Message != "Error updating task status" {
		t.Errorf("notifications = %+v", n)
	}
}

func TestManager_LoadReplaysPending(t *testing.T) {
	t.Parallel()

	store := newStore(scenarioTasks()...)
	updater := mocks.NewMockTaskUpdater(t)
	notifier, _ := recordingNotifier(t)
	m := NewManager(store, updater, notifier, discardLogger())

	release := make(chan struct{})
	updater.EXPECT().UpdateTask(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, task.Task) (ports.UpdateResult, error) {
			<-release
			return ports.UpdateResult{Success: true}, nil
		}).Once()

	tx, err := m.Move(context.Background(), board.MoveIntent{TaskID: "A", TargetLane: task.StatusDone})
	if err != nil || tx == nil {
		t.Fatalf("Move() = %v, %v", tx, err)
	}

	fresh := append(scenarioTasks(), task.Task{ID: "N", Title: "new", Status: task.StatusTodo})
	b := m.Load(context.Background(), fresh)

	if lane, _, _ := b.Locate("A"); lane != task.StatusDone {
		t.Errorf("pending move lost on reload: A in %s", lane)
	}
	if _, ok := b.Task("N"); !ok {
		t.Errorf("reloaded task N missing")
	}
	if lane, _, _ := m.Baseline().Locate("A"); lane != task.StatusTodo {
		t.Errorf("baseline A lane = %s, want TODO", lane)
	}

	close(release)
	waitTx(t, tx)
	if lane, _, _ := m.Baseline().Locate("A"); lane != task.StatusDone {
		t.Errorf("baseline A lane after commit = %s, want DONE", lane)
	}
}

func TestManager_LoadReplaysCrossLaneMoveAlreadyFetched(t *testing.T) {
	t.Parallel()

	day := func(d int) *time.Time {
		v := time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	tasks := func(aLane task.Status) []task.Task {
		return []task.Task{
			{ID: "A", Title: "A", Status: aLane, Deadline: day(10)},
			{ID: "D1", Title: "D1", Status: task.StatusOngoing, Deadline: day(5)},
			{ID: "D2", Title: "D2", Status: task.StatusOngoing, Deadline: day(20)},
		}
	}

	store := newStore(tasks(task.StatusTodo)...)
	updater := mocks.NewMockTaskUpdater(t)
	notifier, _ := recordingNotifier(t)
	m := NewManager(store, updater, notifier, discardLogger())

	release := make(chan struct{})
	updater.EXPECT().UpdateTask(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, task.Task) (ports.UpdateResult, error) {
			<-release
			return ports.UpdateResult{Success: true}, nil
		}).Once()

	tx, err := m.Move(context.Background(), board.MoveIntent{TaskID: "A", TargetLane: task.StatusOngoing, TargetIndex: 0})
	if err != nil || tx == nil {
		t.Fatalf("Move() = %v, %v", tx, err)
	}
	want := []string{"D1", "A", "D2"}
	assertIDs(t, "live after move", laneIDs(store.Snapshot(), task.StatusOngoing), want)

	// The refresh already sees A in ONGOING while the move is still pending.
	b := m.Load(context.Background(), tasks(task.StatusOngoing))
	assertIDs(t, "live after refresh", laneIDs(b, task.StatusOngoing), want)
	assertIDs(t, "baseline after refresh", laneIDs(m.Baseline(), task.StatusOngoing), want)

	close(release)
	waitTx(t, tx)
	assertIDs(t, "live after commit", laneIDs(store.Snapshot(), task.StatusOngoing), want)
	assertIDs(t, "baseline after commit", laneIDs(m.Baseline(), task.StatusOngoing), want)
}

func assertIDs(t *testing.T, what string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", what, got, want)
		return
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s = %v, want %v", what, got, want)
			return
		}
	}
}

func TestManager_UpsertAndRemove(t *testing.T) {
	t.Parallel()

	store := newStore(scenarioTasks()...)
	m := NewManager(store, mocks.NewMockTaskUpdater(t), nil, discardLogger())

	b, err := m.Upsert(context.Background(), task.Task{ID: "B", Title: "B", Status: "Done"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Upsert(label status) error = %v, want ErrValidation", err)
	}

	b, err = m.Upsert(context.Background(), task.Task{ID: "B", Title: "B2", Status: task.StatusDone})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if lane, _, _ := b.Locate("B"); lane != task.StatusDone {
		t.Errorf("B lane = %s, want DONE", lane)
	}
	if !m.Baseline().Equal(b) {
		t.Errorf("baseline not updated by Upsert")
	}

	b = m.Remove(context.Background(), "A")
	if _, ok := b.Task("A"); ok {
		t.Errorf("A still on board after Remove")
	}
	if _, ok := m.Baseline().Task("A"); ok {
		t.Errorf("A still in baseline after Remove")
	}
}

func TestManager_Wait(t *testing.T) {
	t.Parallel()

	store := newStore(scenarioTasks()...)
	updater := mocks.NewMockTaskUpdater(t)
	m := NewManager(store, updater, nil, discardLogger())

	release := make(chan struct{})
	updater.EXPECT().UpdateTask(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, task.Task) (ports.UpdateResult, error) {
			<-release
			return ports.UpdateResult{Success: true}, nil
		}).Once()

	if _, err := m.Move(context.Background(), board.MoveIntent{TaskID: "A", TargetLane: task.StatusDone}); err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := m.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() with in-flight move = %v, want DeadlineExceeded", err)
	}

	close(release)
	if err := m.Wait(context.Background()); err != nil {
		t.Errorf("Wait() error = %v", err)
	}
}
