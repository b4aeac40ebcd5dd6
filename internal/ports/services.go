package ports

import (
	"context"

	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/dnd"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
)

// MoveState describes where a submitted move ended up.
type MoveState string

const (
	// MoveNoop means nothing changed: the task was missing or dropped onto
	// its own position.
	MoveNoop       MoveState = "noop"
	MovePending    MoveState = "pending"
	MoveCommitted  MoveState = "committed"
	MoveRolledBack MoveState = "rolled_back"
)

// MoveResult reports the outcome of BoardService.Move.
type MoveResult struct {
	TransactionID string
	State         MoveState
	// Error holds the persistence failure for a rolled back move.
	Error error
	Board board.Board
}

// BoardService defines the service port for workspace boards.
// Implemented by the application layer; called by inbound adapters (handlers).
// Boards are loaded lazily from the TaskSource on first access.
type BoardService interface {
	// GetBoard returns the current board of a workspace.
	GetBoard(ctx context.Context, workspaceID string) (board.Board, error)

	// Refresh reloads the workspace from the task source. Moves still in
	// flight are replayed on top of the fresh data.
	Refresh(ctx context.Context, workspaceID string) (board.Board, error)

	// UpsertTask mirrors an external edit of a task onto the board.
	// Returns domain.ErrValidation if the task fails validation.
	UpsertTask(ctx context.Context, workspaceID string, t task.Task) (board.Board, error)

	// RemoveTask mirrors an external deletion. Removing an unknown task is a no-op.
	RemoveTask(ctx context.Context, workspaceID, taskID string) (board.Board, error)

	// Move applies a move intent optimistically and persists it. When wait
	// is true the call blocks until the move commits or rolls back.
	// Returns domain.ErrValidation if the intent is malformed.
	Move(ctx context.Context, workspaceID string, intent board.MoveIntent, wait bool) (*MoveResult, error)

	// DragState returns the drag controller state of a workspace.
	DragState(ctx context.Context, workspaceID string) (dnd.State, error)

	// SetDropZones replaces the registered drop zones of a workspace.
	SetDropZones(ctx context.Context, workspaceID string, zones []dnd.Zone) error

	// HandleDragEvent feeds one gesture event to the workspace's drag controller.
	HandleDragEvent(ctx context.Context, workspaceID string, ev dnd.Event) (dnd.State, error)

	// Subscribe registers a listener for the board changes of a workspace
	// and returns a function that removes it.
	Subscribe(ctx context.Context, workspaceID string, l BoardListener) (func(), error)
}
