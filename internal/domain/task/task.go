// Package task holds the Task entity, its lane enumeration, and the
// deadline comparator that orders tasks inside a lane.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
)

// Task is a single card on the board.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	Deadline    *time.Time
	WorkspaceID string
}

// HasDeadline reports whether the task carries a deadline.
func (t *Task) HasDeadline() bool {
	return t.Deadline != nil
}

// Clone returns a copy of the task that shares no pointers with t.
func (t Task) Clone() Task {
	if t.Deadline != nil {
		d := *t.Deadline
		t.Deadline = &d
	}
	return t
}

// Validate checks the fields a task needs before it can be placed on a board.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if t.Priority != "" && !t.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", t.Priority)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
