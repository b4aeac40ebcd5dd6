package taskapi

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
)

// dateOnly is the calendar-date deadline encoding some task API versions use.
const dateOnly = "2006-01-02"

// ToDomainTask converts a downstream TaskDTO to a domain Task. Unknown status
// labels normalize to the first lane and unparsable deadlines are dropped.
// When the DTO carries no workspace, workspaceID is used.
func ToDomainTask(dto *TaskDTO, workspaceID string) task.Task {
	ws := dto.WorkspaceID.String()
	if ws == "" {
		ws = workspaceID
	}
	return task.Task{
		ID:          dto.ID.String(),
		Title:       dto.Title,
		Description: dto.Description,
		Status:      task.Normalize(dto.Status),
		Priority:    task.ParsePriority(dto.Priority),
		Deadline:    parseDeadline(dto.Deadline),
		WorkspaceID: ws,
	}
}

// ToDomainTaskList converts a slice of downstream DTOs to domain Tasks.
// Entries without an id are skipped.
func ToDomainTaskList(dtos []TaskDTO, workspaceID string) []task.Task {
	tasks := make([]task.Task, 0, len(dtos))
	for i := range dtos {
		if dtos[i].ID.IsZero() {
			continue
		}
		tasks = append(tasks, ToDomainTask(&dtos[i], workspaceID))
	}
	return tasks
}

// WireFormat records how the task API encoded one task so an update can be
// sent back in the same shape. The zero value sends string identifiers and
// RFC 3339 deadlines.
type WireFormat struct {
	NumericID        bool
	NumericWorkspace bool
	DateOnlyDeadline bool
}

// FormatOf returns the encoding choices the task API made for dto.
func FormatOf(dto *TaskDTO) WireFormat {
	f := WireFormat{
		NumericID:        dto.ID.IsNumeric(),
		NumericWorkspace: dto.WorkspaceID.IsNumeric(),
	}
	if dto.Deadline != nil {
		_, err := time.Parse(dateOnly, strings.TrimSpace(*dto.Deadline))
		f.DateOnlyDeadline = err == nil
	}
	return f
}

// ToTaskDTO converts a domain Task to the downstream update payload in the
// given wire format. The status is sent as the lane's display label.
func ToTaskDTO(t *task.Task, f WireFormat) TaskDTO {
	dto := TaskDTO{
		ID:          flexibleID(t.ID, f.NumericID),
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.Label(),
		Priority:    t.Priority.String(),
		WorkspaceID: flexibleID(t.WorkspaceID, f.NumericWorkspace),
	}
	if t.Deadline != nil {
		layout := time.RFC3339
		if f.DateOnlyDeadline {
			layout = dateOnly
		}
		d := t.Deadline.UTC().Format(layout)
		dto.Deadline = &d
	}
	return dto
}

func flexibleID(s string, numeric bool) FlexibleID {
	if numeric {
		return NumberID(s)
	}
	return StringID(s)
}

func parseDeadline(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, dateOnly} {
		if d, err := time.Parse(layout, s); err == nil {
			return &d
		}
	}
	return nil
}
