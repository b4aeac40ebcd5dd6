package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
)

const testWorkspace = "ws-1"

var testDeadline = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withWorkspace(r *http.Request) *http.Request {
	return withChiParams(r, map[string]string{"workspaceId": testWorkspace})
}

func testBoard() board.Board {
	return board.FromTasks([]task.Task{
		{ID: "A", Title: "Write report", Status: task.StatusTodo, Deadline: &testDeadline, WorkspaceID: testWorkspace},
		{ID: "B", Title: "Review PR", Status: task.StatusTodo, WorkspaceID: testWorkspace},
		{ID: "C", Title: "Deploy", Status: task.StatusOngoing, WorkspaceID: testWorkspace},
	})
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func intPtr(v int) *int { return &v }
