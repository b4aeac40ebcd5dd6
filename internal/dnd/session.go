package dnd

import (
	"time"

	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
)

// Phase is the drag controller's state.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseDragging   Phase = "dragging"
	PhaseCommitting Phase = "committing"
)

// Session is one drag gesture, from activation to drop or cancel.
type Session struct {
	ID          string      `json:"id"`
	TaskID      string      `json:"taskId"`
	SourceLane  task.Status `json:"sourceLane"`
	SourceIndex int         `json:"sourceIndex"`
	Sensor      SensorKind  `json:"sensor"`
	Origin      Point       `json:"origin"`
	StartedAt   time.Time   `json:"startedAt"`
}

// State is the controller state exposed to the view.
type State struct {
	Phase   Phase    `json:"phase"`
	Session *Session `json:"session,omitempty"`
	Over    *Target  `json:"over,omitempty"`
	// TransactionID is set while a drop is being committed.
	TransactionID string `json:"transactionId,omitempty"`
}

// EventType is the kind of input event fed to the controller.
type EventType string

const (
	EventStart  EventType = "start"
	EventMove   EventType = "move"
	EventEnd    EventType = "end"
	EventCancel EventType = "cancel"
	EventKey    EventType = "key"
)

// Event is one input event from the view.
type Event struct {
	Type   EventType  `json:"type"`
	Sensor SensorKind `json:"sensor"`
	TaskID string     `json:"taskId,omitempty"`
	Point  Point      `json:"point"`
	// Rect is the dragged item's current rectangle. When empty the controller
	// derives it from the task's zone and the pointer offset.
	Rect Rect      `json:"rect"`
	Key  string    `json:"key,omitempty"`
	At   time.Time `json:"at"`
}
