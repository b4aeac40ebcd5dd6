// Package events defines the wire form of board and notification events.
// The HTTP event stream and the Redis publisher both encode through it, so
// every consumer sees one format.
package events

import (
	"time"

	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
)

// Task is one card.
type Task struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority,omitempty"`
	Deadline    *string `json:"deadline"`
	WorkspaceID string  `json:"workspaceId,omitempty"`
}

// NewTask converts a domain Task. Deadlines are sent as RFC 3339 in UTC.
func NewTask(t *task.Task) Task {
	out := Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.String(),
		Priority:    t.Priority.String(),
		WorkspaceID: t.WorkspaceID,
	}
	if t.Deadline != nil {
		d := t.Deadline.UTC().Format(time.RFC3339)
		out.Deadline = &d
	}
	return out
}

// Lane is one lane of a board, in display order.
type Lane struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Tasks  []Task `json:"tasks"`
	Count  int    `json:"count"`
}

// Board is a whole workspace board.
type Board struct {
	WorkspaceID string `json:"workspaceId"`
	Lanes       []Lane `json:"lanes"`
	Count       int    `json:"count"`
}

// NewBoard converts a board. Lanes appear in the fixed TODO, ONGOING, DONE
// order and empty lanes encode as empty arrays.
func NewBoard(workspaceID string, b board.Board) Board {
	lanes := task.Lanes()
	out := Board{
		WorkspaceID: workspaceID,
		Lanes:       make([]Lane, len(lanes)),
	}
	for i, lane := range lanes {
		tasks := b.Lane(lane)
		items := make([]Task, len(tasks))
		for j := range tasks {
			items[j] = NewTask(&tasks[j])
		}
		out.Lanes[i] = Lane{
			Status: lane.String(),
			Label:  lane.Label(),
			Tasks:  items,
			Count:  len(items),
		}
		out.Count += len(items)
	}
	return out
}

// BoardEvent is published for every board change.
type BoardEvent struct {
	WorkspaceID string `json:"workspaceId"`
	Version     uint64 `json:"version"`
	Op          string `json:"op"`
	TaskID      string `json:"taskId,omitempty"`
	Board       Board  `json:"board"`
}

// NewBoardEvent converts a store change.
func NewBoardEvent(c *board.Change) BoardEvent {
	return BoardEvent{
		WorkspaceID: c.WorkspaceID,
		Version:     c.Version,
		Op:          string(c.Op),
		TaskID:      c.TaskID,
		Board:       NewBoard(c.WorkspaceID, c.Board),
	}
}

// NotificationEvent is published for every move outcome notification.
type NotificationEvent struct {
	WorkspaceID   string `json:"workspaceId"`
	TaskID        string `json:"taskId,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	Level         string `json:"level"`
	Message       string `json:"message"`
	Time          string `json:"time"`
}

// NewNotificationEvent converts a notification.
func NewNotificationEvent(n *ports.Notification) NotificationEvent {
	return NotificationEvent{
		WorkspaceID:   n.WorkspaceID,
		TaskID:        n.TaskID,
		TransactionID: n.TransactionID,
		Level:         string(n.Level),
		Message:       n.Message,
		Time:          n.Time.UTC().Format(time.RFC3339Nano),
	}
}
