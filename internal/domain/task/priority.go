package task

import "strings"

// Priority represents how urgent a task is. It has no effect on lane order.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}

// ParsePriority maps a case-insensitive priority name onto a Priority,
// defaulting to medium for anything unrecognized.
func ParsePriority(raw string) Priority {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if p.IsValid() {
		return p
	}
	return PriorityMedium
}
