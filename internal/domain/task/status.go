package task

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
)

// Status is the lane a task lives in. The set is closed: a board always has
// exactly these three lanes, in this order.
type Status string

const (
	StatusTodo    Status = "TODO"
	StatusOngoing Status = "ONGOING"
	StatusDone    Status = "DONE"
)

// Lanes returns the board lanes in display order.
func Lanes() []Status {
	return []Status{StatusTodo, StatusOngoing, StatusDone}
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusOngoing, StatusDone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Label returns the human-facing lane title used by the task API and in
// notifications ("To Do", "Ongoing", "Done").
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusOngoing:
		return "Ongoing"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// Index returns the lane's position in Lanes(), or -1 for an invalid status.
func (s Status) Index() int {
	switch s {
	case StatusTodo:
		return 0
	case StatusOngoing:
		return 1
	case StatusDone:
		return 2
	default:
		return -1
	}
}

// ParseLane strictly parses a lane name. It accepts the enum spelling and the
// display label in any case; everything else is a validation error.
func ParseLane(raw string) (Status, error) {
	if s, ok := lookup(raw); ok {
		return s, nil
	}
	return "", domain.NewValidationError("lane", fmt.Sprintf("invalid: %q", raw))
}

// Normalize maps a possibly dirty status value from an external source onto
// a lane. Unknown or empty values land in TODO so every task keeps a home.
func Normalize(raw string) Status {
	if s, ok := lookup(raw); ok {
		return s
	}
	return StatusTodo
}

func lookup(raw string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "todo", "to do", "to_do":
		return StatusTodo, true
	case "ongoing", "in progress", "in_progress":
		return StatusOngoing, true
	case "done":
		return StatusDone, true
	default:
		return "", false
	}
}
