package board

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
)

// MoveIntent is a resolved request to reposition one task, built at drop time
// and consumed immediately.
type MoveIntent struct {
	TaskID      string
	SourceLane  task.Status
	SourceIndex int
	TargetLane  task.Status
	TargetIndex int
	// OverTaskID is the task the drop landed on, if any.
	OverTaskID string
}

// SameLane reports whether the intent reorders within one lane.
func (m MoveIntent) SameLane() bool {
	return m.SourceLane == m.TargetLane
}

// IsNoop reports whether dropping here leaves the board unchanged: the task
// was dropped onto itself or onto its own position.
func (m MoveIntent) IsNoop() bool {
	if m.OverTaskID != "" && m.OverTaskID == m.TaskID {
		return true
	}
	return m.SameLane() && m.SourceIndex == m.TargetIndex
}

// Validate checks the intent's fields.
func (m MoveIntent) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(m.TaskID) == "" {
		fields["task_id"] = domain.MsgRequired
	}
	if m.SourceLane != "" && !m.SourceLane.IsValid() {
		fields["source_lane"] = fmt.Sprintf("invalid: %q", m.SourceLane)
	}
	if !m.TargetLane.IsValid() {
		fields["target_lane"] = fmt.Sprintf("invalid: %q", m.TargetLane)
	}
	if m.TargetIndex < 0 {
		fields["target_index"] = "must not be negative"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (m MoveIntent) String() string {
	return fmt.Sprintf("%s %s[%d] -> %s[%d]", m.TaskID, m.SourceLane, m.SourceIndex, m.TargetLane, m.TargetIndex)
}
