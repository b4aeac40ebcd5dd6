package http_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/taskboard-sync/internal/adapters/http"
	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
	"github.com/jsamuelsen11/taskboard-sync/mocks"
)

func newTestRouter(
	t *testing.T,
	requestTimeout time.Duration,
	middlewares ...func(http.Handler) http.Handler,
) (http.Handler, *mocks.MockBoardService, *mocks.MockHealthRegistry) {
	t.Helper()
	svc := mocks.NewMockBoardService(t)
	registry := mocks.NewMockHealthRegistry(t)

	router := adapthttp.NewRouter(
		handlers.NewBoardHandler(svc),
		handlers.NewDragHandler(svc),
		handlers.NewEventsHandler(svc, nil, nil),
		handlers.NewHealthHandler(registry),
		requestTimeout,
		middlewares...,
	)
	return router, svc, registry
}

func sampleBoard() board.Board {
	return board.FromTasks([]task.Task{
		{ID: "A", Title: "Write report", Status: task.StatusTodo, WorkspaceID: "ws-1"},
		{ID: "B", Title: "Deploy", Status: task.StatusOngoing, WorkspaceID: "ws-1"},
	})
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t, time.Second)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/boards/{workspaceId}/"},
		{http.MethodGet, "/api/v1/boards/{workspaceId}/events"},
		{http.MethodPost, "/api/v1/boards/{workspaceId}/refresh"},
		{http.MethodPut, "/api/v1/boards/{workspaceId}/tasks/{taskId}"},
		{http.MethodDelete, "/api/v1/boards/{workspaceId}/tasks/{taskId}"},
		{http.MethodPost, "/api/v1/boards/{workspaceId}/moves"},
		{http.MethodGet, "/api/v1/boards/{workspaceId}/drag"},
		{http.MethodPut, "/api/v1/boards/{workspaceId}/drag/zones"},
		{http.MethodPost, "/api/v1/boards/{workspaceId}/drag/events"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, _, registry := newTestRouter(t, time.Second, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationGetBoard(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t, time.Second)

	svc.EXPECT().GetBoard(mock.Anything, "ws-1").Return(sampleBoard(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/boards/ws-1", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_IntegrationDeleteTaskPassesParams(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t, time.Second)

	svc.EXPECT().RemoveTask(mock.Anything, "ws-9", "task-42").Return(board.Board{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/boards/ws-9/tasks/task-42", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_RequestTimeoutAppliesToMoves(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t, 30*time.Millisecond)

	svc.EXPECT().Move(mock.Anything, "ws-1", mock.Anything, true).
		RunAndReturn(func(ctx context.Context, _ string, _ board.MoveIntent, _ bool) (*ports.MoveResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/boards/ws-1/moves?wait=true",
		strings.NewReader(`{"taskId":"A","targetLane":"ONGOING"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusGatewayTimeout, rec.Body.String())
	}
}

func TestRouter_EventStreamNotBuffered(t *testing.T) {
	t.Parallel()

	// A short request timeout must not buffer or cut off the stream.
	router, svc, _ := newTestRouter(t, 20*time.Millisecond)

	svc.EXPECT().Subscribe(mock.Anything, "ws-1", mock.Anything).Return(func() {}, nil)
	svc.EXPECT().GetBoard(mock.Anything, "ws-1").Return(sampleBoard(), nil)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/boards/ws-1/events", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q, want %q", ct, "text/event-stream")
	}

	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	if err != nil {
		t.Fatalf("reading first event: %v", err)
	}
	if got := strings.TrimSpace(line); got != "event: "+handlers.EventSnapshot {
		t.Errorf("first line = %q, want snapshot event", got)
	}

	time.Sleep(60 * time.Millisecond)
	cancel()
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t, time.Second)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t, time.Second)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/boards/ws-1/moves", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
