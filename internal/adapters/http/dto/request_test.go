package dto_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard-sync/internal/dnd"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestUpsertTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpsertTaskRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid request passes",
			req:  dto.UpsertTaskRequest{Title: "Write docs", Status: "TODO"},
		},
		{
			name: "display label and date-only deadline",
			req:  dto.UpsertTaskRequest{Title: "Write docs", Status: "In Progress", Deadline: stringPtr("2025-05-01")},
		},
		{
			name:      "missing title",
			req:       dto.UpsertTaskRequest{Title: "  ", Status: "TODO"},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "unknown status",
			req:       dto.UpsertTaskRequest{Title: "x", Status: "BLOCKED"},
			wantErr:   true,
			wantField: "status",
		},
		{
			name:      "bad deadline",
			req:       dto.UpsertTaskRequest{Title: "x", Status: "DONE", Deadline: stringPtr("soon")},
			wantErr:   true,
			wantField: "deadline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpsertTaskRequest_ToDomain(t *testing.T) {
	t.Parallel()

	req := dto.UpsertTaskRequest{
		Title:    " Write docs ",
		Status:   "Ongoing",
		Priority: "HIGH",
		Deadline: stringPtr("2025-05-01T12:00:00Z"),
	}

	got := req.ToDomain("ws-1", "t-9")

	if got.ID != "t-9" || got.WorkspaceID != "ws-1" {
		t.Errorf("ids = (%q, %q), want (t-9, ws-1)", got.ID, got.WorkspaceID)
	}
	if got.Title != "Write docs" {
		t.Errorf("Title = %q, want %q", got.Title, "Write docs")
	}
	if got.Status != task.StatusOngoing {
		t.Errorf("Status = %q, want %q", got.Status, task.StatusOngoing)
	}
	if got.Priority != task.PriorityHigh {
		t.Errorf("Priority = %q, want %q", got.Priority, task.PriorityHigh)
	}
	want := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	if got.Deadline == nil || !got.Deadline.Equal(want) {
		t.Errorf("Deadline = %v, want %v", got.Deadline, want)
	}
}

func TestMoveRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.MoveRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid",
			req:  dto.MoveRequest{TaskID: "A", TargetLane: "ONGOING", TargetIndex: intPtr(0)},
		},
		{
			name:      "missing task",
			req:       dto.MoveRequest{TargetLane: "DONE", TargetIndex: intPtr(0)},
			wantErr:   true,
			wantField: "taskId",
		},
		{
			name:      "bad lane",
			req:       dto.MoveRequest{TaskID: "A", TargetLane: "Later", TargetIndex: intPtr(0)},
			wantErr:   true,
			wantField: "targetLane",
		},
		{
			name:      "missing index",
			req:       dto.MoveRequest{TaskID: "A", TargetLane: "DONE"},
			wantErr:   true,
			wantField: "targetIndex",
		},
		{
			name:      "negative index",
			req:       dto.MoveRequest{TaskID: "A", TargetLane: "DONE", TargetIndex: intPtr(-1)},
			wantErr:   true,
			wantField: "targetIndex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestMoveRequest_ToIntent(t *testing.T) {
	t.Parallel()

	req := dto.MoveRequest{TaskID: "A", TargetLane: "Done", TargetIndex: intPtr(2), OverTaskID: "B"}
	got := req.ToIntent()

	if got.TaskID != "A" || got.TargetLane != task.StatusDone || got.TargetIndex != 2 || got.OverTaskID != "B" {
		t.Errorf("ToIntent() = %+v", got)
	}
}

func TestSetZonesRequest_ToZones(t *testing.T) {
	t.Parallel()

	req := dto.SetZonesRequest{Zones: []dto.ZoneRequest{
		{ID: "lane-todo", Kind: "lane", Lane: "To Do", Rect: dnd.Rect{Width: 100, Height: 400}},
		{ID: "card-A", Kind: "task", TaskID: "A", Rect: dnd.Rect{Width: 100, Height: 40}},
	}}

	zones, err := req.ToZones()
	if err != nil {
		t.Fatalf("ToZones() error = %v", err)
	}
	if len(zones) != 2 {
		t.Fatalf("len(zones) = %d, want 2", len(zones))
	}
	if zones[0].Lane != task.StatusTodo {
		t.Errorf("zones[0].Lane = %q, want %q", zones[0].Lane, task.StatusTodo)
	}

	bad := dto.SetZonesRequest{Zones: []dto.ZoneRequest{
		{ID: "lane-x", Kind: "lane", Lane: "Someday"},
		{ID: "", Kind: "task", TaskID: "A"},
	}}
	_, err = bad.ToZones()
	requireValidationField(t, err, "zones[0].lane")
	requireValidationField(t, err, "zones[1]")
}

func TestDragEventRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.DragEventRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "pointer start",
			req:  dto.DragEventRequest{Type: "start", Sensor: "pointer", TaskID: "A"},
		},
		{
			name: "keyboard key",
			req:  dto.DragEventRequest{Type: "key", Sensor: "keyboard", TaskID: "A", Key: "Enter"},
		},
		{
			name:      "unknown type",
			req:       dto.DragEventRequest{Type: "hover", Sensor: "pointer"},
			wantErr:   true,
			wantField: "type",
		},
		{
			name:      "unknown sensor",
			req:       dto.DragEventRequest{Type: "move", Sensor: "mouse"},
			wantErr:   true,
			wantField: "sensor",
		},
		{
			name:      "start without task",
			req:       dto.DragEventRequest{Type: "start", Sensor: "touch"},
			wantErr:   true,
			wantField: "taskId",
		},
		{
			name:      "key without key",
			req:       dto.DragEventRequest{Type: "key", Sensor: "keyboard"},
			wantErr:   true,
			wantField: "key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestDragEventRequest_ToEvent_DefaultsTimestamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	req := dto.DragEventRequest{Type: "move", Sensor: "pointer", Point: dnd.Point{X: 3, Y: 4}}

	ev := req.ToEvent(now)
	if !ev.At.Equal(now) {
		t.Errorf("At = %v, want %v", ev.At, now)
	}
	if ev.Type != dnd.EventMove || ev.Sensor != dnd.SensorPointer || ev.Point != (dnd.Point{X: 3, Y: 4}) {
		t.Errorf("ToEvent() = %+v", ev)
	}

	client := now.Add(-time.Second)
	req.At = &client
	if got := req.ToEvent(now).At; !got.Equal(client) {
		t.Errorf("At = %v, want client time %v", got, client)
	}
}
