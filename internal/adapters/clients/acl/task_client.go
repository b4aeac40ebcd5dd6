package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/clients/acl/taskapi"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-sync/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaskClient    = (*TaskClient)(nil)
	_ ports.HealthChecker = (*TaskClient)(nil)
)

// TaskClient is the outbound adapter for the downstream task API. It
// implements [ports.TaskClient]: listing a workspace's tasks to seed a board
// and persisting moved tasks.
//
// Responses arrive in a {success, message, data} envelope and are translated
// by the [taskapi] subpackage. HTTP errors are mapped to domain errors
// (ErrNotFound, ErrUnavailable, etc.) by [TranslateHTTPError]. The client
// remembers how each task it has read was encoded so updates go back in the
// same shape.
type TaskClient struct {
	req    *Requester
	client *httpclient.Client
	logger *slog.Logger

	mu      sync.Mutex
	formats map[string]taskapi.WireFormat
}

// NewTaskClient creates a TaskClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the task API
// root (e.g. "http://localhost:3001/api").
func NewTaskClient(client *httpclient.Client, logger *slog.Logger) *TaskClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskClient{
		req:     NewRequester(client, logger),
		client:  client,
		logger:  logger,
		formats: make(map[string]taskapi.WireFormat),
	}
}

// ListWorkspaceTasks fetches GET /tasks/workspaces/{workspaceId}. An envelope
// with success=false is reported as [domain.ErrUnavailable].
func (c *TaskClient) ListWorkspaceTasks(ctx context.Context, workspaceID string) ([]task.Task, error) {
	if workspaceID == "" {
		return nil, domain.NewValidationError("workspace_id", domain.MsgRequired)
	}
	path := "/tasks/workspaces/" + url.PathEscape(workspaceID)

	var env taskapi.Envelope[[]taskapi.TaskDTO]
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("listing tasks for workspace %s: %s: %w", workspaceID, env.Message, domain.ErrUnavailable)
	}
	for i := range env.Data {
		c.remember(&env.Data[i])
	}
	return taskapi.ToDomainTaskList(env.Data, workspaceID), nil
}

// UpdateTask sends PUT /tasks/{id} with the full task. A 2xx response whose
// envelope reports success=false is returned as an unsuccessful
// [ports.UpdateResult] rather than an error. Once the update is superseded
// (see [ports.WithSuperseded]) failed attempts are no longer retried.
func (c *TaskClient) UpdateTask(ctx context.Context, t task.Task) (ports.UpdateResult, error) {
	if t.ID == "" {
		return ports.UpdateResult{}, domain.NewValidationError("id", domain.MsgRequired)
	}
	if stale := ports.Superseded(ctx); stale != nil {
		ctx = httpclient.WithRetryStop(ctx, stale)
	}
	path := "/tasks/" + url.PathEscape(t.ID)

	var env taskapi.Envelope[*taskapi.TaskDTO]
	if err := c.req.Do(ctx, http.MethodPut, path, taskapi.ToTaskDTO(&t, c.format(t.ID)), &env); err != nil {
		return ports.UpdateResult{}, err
	}

	result := ports.UpdateResult{Success: env.Success, Message: env.Message}
	if env.Success && env.Data != nil && !env.Data.ID.IsZero() {
		updated := taskapi.ToDomainTask(env.Data, t.WorkspaceID)
		result.Task = &updated
	}
	if !env.Success {
		c.logger.WarnContext(ctx, "task update rejected",
			slog.String("operation", "UpdateTask"),
			slog.String("task_id", t.ID),
			slog.String("message", env.Message),
		)
	}
	return result, nil
}

func (c *TaskClient) remember(dto *taskapi.TaskDTO) {
	if dto.ID.IsZero() {
		return
	}
	c.mu.Lock()
	c.formats[dto.ID.String()] = taskapi.FormatOf(dto)
	c.mu.Unlock()
}

func (c *TaskClient) format(id string) taskapi.WireFormat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formats[id]
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name given to the
// underlying [httpclient.Client].
func (c *TaskClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the task API's availability from the circuit breaker
// state. No network call is made.
func (c *TaskClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
