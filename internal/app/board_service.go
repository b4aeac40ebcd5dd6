// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/taskboard-sync/internal/app/fanout"
	"github.com/jsamuelsen11/taskboard-sync/internal/app/movetx"
	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/dnd"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-sync/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
)

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

// BoardOptions tunes the per-workspace engines created by BoardService.
type BoardOptions struct {
	PersistTimeout time.Duration
	Collision      dnd.Strategy
	Sensors        dnd.Sensors
	Metrics        *telemetry.Metrics
}

// workspace bundles the engine pieces of one board.
type workspace struct {
	store      *board.Store
	manager    *movetx.Manager
	resolver   *dnd.Resolver
	controller *dnd.Controller
}

// BoardService implements ports.BoardService. It keeps one board engine per
// workspace (store, move transaction manager, resolver and drag controller),
// created lazily from the task source on first access.
type BoardService struct {
	source    ports.TaskSource
	updater   ports.TaskUpdater
	notifier  ports.Notifier
	listeners []ports.BoardListener
	opts      BoardOptions
	logger    *slog.Logger

	mu     sync.RWMutex
	boards map[string]*workspace
	loads  singleflight.Group
}

// NewBoardService creates a BoardService. Every listener is subscribed to
// each workspace board as soon as it is loaded. A nil logger discards output.
func NewBoardService(
	source ports.TaskSource,
	updater ports.TaskUpdater,
	notifier ports.Notifier,
	opts BoardOptions,
	logger *slog.Logger,
	listeners ...ports.BoardListener,
) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.PersistTimeout <= 0 {
		opts.PersistTimeout = movetx.DefaultPersistTimeout
	}
	if len(opts.Sensors.Keyboard.Start) == 0 {
		opts.Sensors.Keyboard = dnd.DefaultSensors().Keyboard
	}
	return &BoardService{
		source:    source,
		updater:   updater,
		notifier:  notifier,
		listeners: listeners,
		opts:      opts,
		logger:    logger,
		boards:    make(map[string]*workspace),
	}
}

// GetBoard returns the current board of a workspace.
func (s *BoardService) GetBoard(ctx context.Context, workspaceID string) (board.Board, error) {
	ws, err := s.workspace(ctx, workspaceID)
	if err != nil {
		return board.Board{}, err
	}
	return ws.store.Snapshot(), nil
}

// Refresh reloads the workspace from the task source. Moves still in flight
// are replayed on top of the fresh data.
func (s *BoardService) Refresh(ctx context.Context, workspaceID string) (board.Board, error) {
	ws, err := s.workspace(ctx, workspaceID)
	if err != nil {
		return board.Board{}, err
	}

	tasks, err := s.fetch(ctx, workspaceID)
	if err != nil {
		return board.Board{}, err
	}
	return ws.manager.Load(ctx, tasks), nil
}

// UpsertTask mirrors an external edit of a task onto the board.
func (s *BoardService) UpsertTask(ctx context.Context, workspaceID string, t task.Task) (board.Board, error) {
	ws, err := s.workspace(ctx, workspaceID)
	if err != nil {
		return board.Board{}, err
	}
	t.WorkspaceID = workspaceID

	b, err := ws.manager.Upsert(ctx, t)
	if err != nil {
		s.logger.WarnContext(ctx, "rejected task upsert",
			slog.String("operation", "UpsertTask"),
			slog.String("workspace_id", workspaceID),
			slog.String("task_id", t.ID),
			slog.Any("error", err),
		)
		return board.Board{}, err
	}
	return b, nil
}

// RemoveTask mirrors an external deletion. Removing an unknown task is a no-op.
func (s *BoardService) RemoveTask(ctx context.Context, workspaceID, taskID string) (board.Board, error) {
	ws, err := s.workspace(ctx, workspaceID)
	if err != nil {
		return board.Board{}, err
	}
	return ws.manager.Remove(ctx, taskID), nil
}

// Move applies a move intent optimistically and persists it. When wait is
// true the call blocks until the move commits or rolls back, or ctx ends.
func (s *BoardService) Move(ctx context.Context, workspaceID string, intent board.MoveIntent, wait bool) (*ports.MoveResult, error) {
	ws, err := s.workspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	tx, err := ws.manager.Move(ctx, intent)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return &ports.MoveResult{State: ports.MoveNoop, Board: ws.store.Snapshot()}, nil
	}

	if wait {
		if err := tx.Wait(ctx); err != nil && tx.State() == movetx.StatePending {
			return nil, fmt.Errorf("waiting for move %s: %w", tx.ID(), err)
		}
	}

	res := &ports.MoveResult{
		TransactionID: tx.ID(),
		State:         moveState(tx.State()),
		Error:         tx.Err(),
		Board:         ws.store.Snapshot(),
	}
	return res, nil
}

// DragState returns the drag controller state of a workspace.
func (s *BoardService) DragState(ctx context.Context, workspaceID string) (dnd.State, error) {
	ws, err := s.workspace(ctx, workspaceID)
	if err != nil {
		return dnd.State{}, err
	}
	return ws.controller.State(), nil
}

// SetDropZones replaces the registered drop zones of a workspace.
func (s *BoardService) SetDropZones(ctx context.Context, workspaceID string, zones []dnd.Zone) error {
	ws, err := s.workspace(ctx, workspaceID)
	if err != nil {
		return err
	}
	return ws.resolver.SetZones(zones)
}

// HandleDragEvent feeds one gesture event to the workspace's drag controller.
func (s *BoardService) HandleDragEvent(ctx context.Context, workspaceID string, ev dnd.Event) (dnd.State, error) {
	ws, err := s.workspace(ctx, workspaceID)
	if err != nil {
		return dnd.State{}, err
	}
	return ws.controller.Handle(ctx, ev)
}

// Subscribe registers a listener for the board changes of a workspace and
// returns a function that removes it.
func (s *BoardService) Subscribe(ctx context.Context, workspaceID string, l ports.BoardListener) (func(), error) {
	ws, err := s.workspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return ws.store.Subscribe(l.BoardChanged), nil
}

// Preload loads the given workspaces with at most workers concurrent fetches.
// Failures are logged and joined; workspaces that loaded stay available.
func (s *BoardService) Preload(ctx context.Context, workspaceIDs []string, workers int) error {
	if workers < 1 {
		workers = 1
	}
	results := fanout.Run(ctx, workers, workspaceIDs, func(ctx context.Context, id string) (int, error) {
		b, err := s.GetBoard(ctx, id)
		if err != nil {
			return 0, fmt.Errorf("workspace %s: %w", id, err)
		}
		return b.Len(), nil
	})

	for i, r := range results {
		if r.Err == nil {
			s.logger.InfoContext(ctx, "preloaded board",
				slog.String("workspace_id", workspaceIDs[i]),
				slog.Int("tasks", r.Value),
			)
		}
	}
	return fanout.Err(results)
}

// Wait blocks until every in-flight move of every workspace has completed or
// ctx is done.
func (s *BoardService) Wait(ctx context.Context) error {
	s.mu.RLock()
	managers := make([]*movetx.Manager, 0, len(s.boards))
	for _, ws := range s.boards {
		managers = append(managers, ws.manager)
	}
	s.mu.RUnlock()

	for _, m := range managers {
		if err := m.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// workspace returns the engine of a workspace, loading it on first access.
// Concurrent first accesses share one fetch.
func (s *BoardService) workspace(ctx context.Context, workspaceID string) (*workspace, error) {
	if strings.TrimSpace(workspaceID) == "" {
		return nil, domain.NewValidationError("workspace_id", domain.MsgRequired)
	}

	s.mu.RLock()
	ws, ok := s.boards[workspaceID]
	s.mu.RUnlock()
	if ok {
		return ws, nil
	}

	v, err, _ := s.loads.Do(workspaceID, func() (any, error) {
		s.mu.RLock()
		existing, ok := s.boards[workspaceID]
		s.mu.RUnlock()
		if ok {
			return existing, nil
		}

		tasks, err := s.fetch(ctx, workspaceID)
		if err != nil {
			return nil, err
		}
		created := s.newWorkspace(workspaceID, tasks)

		s.mu.Lock()
		s.boards[workspaceID] = created
		s.mu.Unlock()

		s.logger.InfoContext(ctx, "loaded board",
			slog.String("workspace_id", workspaceID),
			slog.Int("tasks", len(tasks)),
		)
		return created, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*workspace), nil
}

func (s *BoardService) fetch(ctx context.Context, workspaceID string) ([]task.Task, error) {
	tasks, err := s.source.ListWorkspaceTasks(ctx, workspaceID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load board",
			slog.String("operation", "ListWorkspaceTasks"),
			slog.String("workspace_id", workspaceID),
			slog.Any("error", err),
		)
		return nil, err
	}
	for i := range tasks {
		if tasks[i].WorkspaceID == "" {
			tasks[i].WorkspaceID = workspaceID
		}
	}
	return tasks, nil
}

func (s *BoardService) newWorkspace(workspaceID string, tasks []task.Task) *workspace {
	store := board.NewStore(workspaceID)
	store.ReplaceAll(tasks)

	opts := []movetx.Option{movetx.WithPersistTimeout(s.opts.PersistTimeout)}
	if s.opts.Metrics != nil {
		opts = append(opts, movetx.WithMetrics(s.opts.Metrics))
	}
	manager := movetx.NewManager(store, s.updater, s.notifier, s.logger, opts...)
	resolver := dnd.NewResolver(store, s.opts.Collision)
	controller := dnd.NewController(store, resolver, txMover{manager: manager}, s.opts.Sensors, s.logger)

	for _, l := range s.listeners {
		store.Subscribe(l.BoardChanged)
	}

	return &workspace{
		store:      store,
		manager:    manager,
		resolver:   resolver,
		controller: controller,
	}
}

func moveState(st movetx.State) ports.MoveState {
	switch st {
	case movetx.StateCommitted:
		return ports.MoveCommitted
	case movetx.StateRolledBack:
		return ports.MoveRolledBack
	default:
		return ports.MovePending
	}
}

// txMover adapts a movetx.Manager to the drag controller's Mover contract.
type txMover struct {
	manager *movetx.Manager
}

func (m txMover) Move(ctx context.Context, intent board.MoveIntent) (dnd.Commit, error) {
	tx, err := m.manager.Move(ctx, intent)
	if err != nil || tx == nil {
		return nil, err
	}
	return tx, nil
}
