package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard-sync/internal/dnd"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-sync/mocks"
)

func newDragHandler(t *testing.T) (*handlers.DragHandler, *mocks.MockBoardService) {
	t.Helper()
	svc := mocks.NewMockBoardService(t)
	return handlers.NewDragHandler(svc), svc
}

func TestGetDragState_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDragHandler(t)

	svc.EXPECT().DragState(mock.Anything, testWorkspace).Return(dnd.State{
		Phase:   dnd.PhaseDragging,
		Session: &dnd.Session{ID: "s-1", TaskID: "A", SourceLane: task.StatusTodo},
		Over:    &dnd.Target{Lane: task.StatusOngoing, Index: 0, OverTaskID: "C"},
	}, nil)

	rec := httptest.NewRecorder()
	req := withWorkspace(httptest.NewRequest(http.MethodGet, "/api/v1/boards/ws-1/drag", nil))
	h.GetState(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dnd.State](t, rec)
	if resp.Phase != dnd.PhaseDragging {
		t.Errorf("Phase = %q, want %q", resp.Phase, dnd.PhaseDragging)
	}
	if resp.Over == nil || resp.Over.Lane != task.StatusOngoing {
		t.Errorf("Over = %+v, want lane ONGOING", resp.Over)
	}
}

func TestSetZones_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDragHandler(t)

	svc.EXPECT().SetDropZones(mock.Anything, testWorkspace, mock.MatchedBy(func(zones []dnd.Zone) bool {
		return len(zones) == 2 &&
			zones[0].Kind == dnd.ZoneLane && zones[0].Lane == task.StatusDone &&
			zones[1].Kind == dnd.ZoneTask && zones[1].TaskID == "A"
	})).Return(nil)

	body := bytes.NewBufferString(`{"zones":[
		{"id":"lane-done","kind":"lane","lane":"Done","rect":{"x":600,"y":0,"width":300,"height":800}},
		{"id":"task-A","kind":"task","taskId":"A","rect":{"x":0,"y":40,"width":300,"height":80}}
	]}`)
	rec := httptest.NewRecorder()
	req := withWorkspace(httptest.NewRequest(http.MethodPut, "/api/v1/boards/ws-1/drag/zones", body))
	h.SetZones(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestSetZones_InvalidZone(t *testing.T) {
	t.Parallel()
	h, _ := newDragHandler(t)

	body := bytes.NewBufferString(`{"zones":[{"id":"z","kind":"lane","lane":"LATER"}]}`)
	rec := httptest.NewRecorder()
	req := withWorkspace(httptest.NewRequest(http.MethodPut, "/api/v1/boards/ws-1/drag/zones", body))
	h.SetZones(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestHandleDragEvent_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDragHandler(t)

	svc.EXPECT().HandleDragEvent(mock.Anything, testWorkspace, mock.MatchedBy(func(ev dnd.Event) bool {
		return ev.Type == dnd.EventKey && ev.Sensor == dnd.SensorKeyboard &&
			ev.TaskID == "A" && ev.Key == "Enter" && !ev.At.IsZero()
	})).Return(dnd.State{Phase: dnd.PhaseDragging}, nil)

	body := jsonBody(t, map[string]string{"type": "key", "sensor": "keyboard", "taskId": "A", "key": "Enter"})
	rec := httptest.NewRecorder()
	req := withWorkspace(httptest.NewRequest(http.MethodPost, "/api/v1/boards/ws-1/drag/events", body))
	h.HandleEvent(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dnd.State](t, rec)
	if resp.Phase != dnd.PhaseDragging {
		t.Errorf("Phase = %q, want %q", resp.Phase, dnd.PhaseDragging)
	}
}

func TestHandleDragEvent_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "unknown type", body: `{"type":"hover","sensor":"pointer"}`, wantStatus: http.StatusBadRequest},
		{name: "start without task", body: `{"type":"start","sensor":"pointer"}`, wantStatus: http.StatusBadRequest},
		{name: "key without key", body: `{"type":"key","sensor":"keyboard"}`, wantStatus: http.StatusBadRequest},
		{
			name:       "task not on board",
			body:       `{"type":"start","sensor":"pointer","taskId":"Z"}`,
			svcErr:     domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newDragHandler(t)

			if tt.svcErr != nil {
				svc.EXPECT().HandleDragEvent(mock.Anything, testWorkspace, mock.Anything).
					Return(dnd.State{Phase: dnd.PhaseIdle}, tt.svcErr)
			}

			rec := httptest.NewRecorder()
			req := withWorkspace(httptest.NewRequest(http.MethodPost, "/api/v1/boards/ws-1/drag/events",
				bytes.NewBufferString(tt.body)))
			h.HandleEvent(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}
