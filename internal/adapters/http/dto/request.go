package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/dnd"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
)

const (
	msgRequired    = "is required"
	msgNotNegative = "must not be negative"
)

// UpsertTaskRequest represents the JSON body mirroring an external task edit.
// The task ID comes from the URL path.
type UpsertTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Deadline    *string `json:"deadline"`
}

// Validate checks that required fields are present and well formed.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpsertTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if _, err := task.ParseLane(r.Status); err != nil {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}
	if r.Deadline != nil && *r.Deadline != "" {
		if _, err := parseDeadline(*r.Deadline); err != nil {
			fields["deadline"] = "must be RFC 3339 or YYYY-MM-DD"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a domain Task. Call Validate first.
func (r *UpsertTaskRequest) ToDomain(workspaceID, taskID string) task.Task {
	status, _ := task.ParseLane(r.Status)
	t := task.Task{
		ID:          taskID,
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Status:      status,
		Priority:    task.ParsePriority(r.Priority),
		WorkspaceID: workspaceID,
	}
	if r.Deadline != nil && *r.Deadline != "" {
		if d, err := parseDeadline(*r.Deadline); err == nil {
			t.Deadline = &d
		}
	}
	return t
}

func parseDeadline(raw string) (time.Time, error) {
	if d, err := time.Parse(time.RFC3339, raw); err == nil {
		return d, nil
	}
	return time.Parse(time.DateOnly, raw)
}

// MoveRequest represents the JSON body of a direct move. The source position
// is optional; the engine locates the task by ID.
type MoveRequest struct {
	TaskID      string `json:"taskId"`
	TargetLane  string `json:"targetLane"`
	TargetIndex *int   `json:"targetIndex"`
	OverTaskID  string `json:"overTaskId,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *MoveRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.TaskID) == "" {
		fields["taskId"] = msgRequired
	}
	if _, err := task.ParseLane(r.TargetLane); err != nil {
		fields["targetLane"] = fmt.Sprintf("invalid: %q", r.TargetLane)
	}
	switch {
	case r.TargetIndex == nil:
		fields["targetIndex"] = msgRequired
	case *r.TargetIndex < 0:
		fields["targetIndex"] = msgNotNegative
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToIntent converts the request to a move intent. Call Validate first.
func (r *MoveRequest) ToIntent() board.MoveIntent {
	lane, _ := task.ParseLane(r.TargetLane)
	intent := board.MoveIntent{
		TaskID:     r.TaskID,
		TargetLane: lane,
		OverTaskID: r.OverTaskID,
	}
	if r.TargetIndex != nil {
		intent.TargetIndex = *r.TargetIndex
	}
	return intent
}

// ZoneRequest is one drop zone in a zone registration body.
type ZoneRequest struct {
	ID     string   `json:"id"`
	Kind   string   `json:"kind"`
	Lane   string   `json:"lane,omitempty"`
	TaskID string   `json:"taskId,omitempty"`
	Rect   dnd.Rect `json:"rect"`
}

// SetZonesRequest represents the JSON body replacing a board's drop zones.
type SetZonesRequest struct {
	Zones []ZoneRequest `json:"zones"`
}

// ToZones converts and validates the requested zones. Lane names accept the
// enum spelling or the display label. Returns a *domain.ValidationError keyed
// by zone position on failure.
func (r *SetZonesRequest) ToZones() ([]dnd.Zone, error) {
	fields := make(map[string]string)
	zones := make([]dnd.Zone, 0, len(r.Zones))

	for i, zr := range r.Zones {
		z := dnd.Zone{
			ID:     zr.ID,
			Kind:   dnd.ZoneKind(zr.Kind),
			TaskID: zr.TaskID,
			Rect:   zr.Rect,
		}
		if zr.Lane != "" {
			lane, err := task.ParseLane(zr.Lane)
			if err != nil {
				fields[fmt.Sprintf("zones[%d].lane", i)] = fmt.Sprintf("invalid: %q", zr.Lane)
				continue
			}
			z.Lane = lane
		}
		if err := z.Validate(); err != nil {
			fields[fmt.Sprintf("zones[%d]", i)] = err.Error()
			continue
		}
		zones = append(zones, z)
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return zones, nil
}

// DragEventRequest represents one gesture event posted by the view.
type DragEventRequest struct {
	Type   string    `json:"type"`
	Sensor string    `json:"sensor"`
	TaskID string    `json:"taskId,omitempty"`
	Point  dnd.Point `json:"point"`
	Rect   dnd.Rect  `json:"rect"`
	Key    string    `json:"key,omitempty"`
	// At is the client timestamp; the server clock is used when absent.
	At *time.Time `json:"at,omitempty"`
}

// Validate checks the event type and sensor.
// Returns a *domain.ValidationError if any checks fail.
func (r *DragEventRequest) Validate() error {
	fields := make(map[string]string)

	switch dnd.EventType(r.Type) {
	case dnd.EventStart, dnd.EventMove, dnd.EventEnd, dnd.EventCancel, dnd.EventKey:
	default:
		fields["type"] = fmt.Sprintf("invalid: %q", r.Type)
	}
	switch dnd.SensorKind(r.Sensor) {
	case dnd.SensorPointer, dnd.SensorTouch, dnd.SensorKeyboard:
	default:
		fields["sensor"] = fmt.Sprintf("invalid: %q", r.Sensor)
	}
	if dnd.EventType(r.Type) == dnd.EventStart && strings.TrimSpace(r.TaskID) == "" {
		fields["taskId"] = msgRequired
	}
	if dnd.EventType(r.Type) == dnd.EventKey && r.Key == "" {
		fields["key"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToEvent converts the request to a controller event, stamping it with now
// when the client sent no timestamp.
func (r *DragEventRequest) ToEvent(now time.Time) dnd.Event {
	at := now
	if r.At != nil && !r.At.IsZero() {
		at = *r.At
	}
	return dnd.Event{
		Type:   dnd.EventType(r.Type),
		Sensor: dnd.SensorKind(r.Sensor),
		TaskID: r.TaskID,
		Point:  r.Point,
		Rect:   r.Rect,
		Key:    r.Key,
		At:     at,
	}
}
