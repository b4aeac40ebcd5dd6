package ports

import (
	"context"

	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
)

// TaskSource loads the tasks of a workspace. Implemented by the ACL adapter.
type TaskSource interface {
	// ListWorkspaceTasks returns every task of the workspace as a snapshot.
	// Returns domain.ErrNotFound if the workspace does not exist.
	ListWorkspaceTasks(ctx context.Context, workspaceID string) ([]task.Task, error)
}

// TaskUpdater persists a repositioned task. Implemented by the ACL adapter.
type TaskUpdater interface {
	// UpdateTask writes the task (including its new status) to the remote
	// task API. A transport or HTTP failure is returned as an error; a request
	// the remote side answered but refused comes back as UpdateResult with
	// Success false.
	UpdateTask(ctx context.Context, t task.Task) (UpdateResult, error)
}

type supersededKey struct{}

// WithSuperseded marks ctx as carrying an update that a newer update of the
// same task will overwrite once stale is closed. A TaskUpdater may stop
// retrying the older update from then on.
func WithSuperseded(ctx context.Context, stale <-chan struct{}) context.Context {
	return context.WithValue(ctx, supersededKey{}, stale)
}

// Superseded returns the channel set by WithSuperseded, or nil.
func Superseded(ctx context.Context) <-chan struct{} {
	stale, _ := ctx.Value(supersededKey{}).(<-chan struct{})
	return stale
}

// TaskClient is the full downstream task API surface used by this service.
type TaskClient interface {
	TaskSource
	TaskUpdater
}

// UpdateResult is the remote task API's answer to an update.
type UpdateResult struct {
	Success bool
	Message string
	// Task is the stored task as echoed by the remote side, when present.
	Task *task.Task
}
