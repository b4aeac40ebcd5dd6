package task

import "slices"

// Compare orders two tasks of the same lane by deadline. Tasks with a
// deadline come first, earliest deadline first; tasks without one sort after
// every dated task. Equal deadlines and two missing deadlines compare equal,
// leaving the decision to a stable sort.
func Compare(a, b Task) int {
	switch {
	case a.Deadline == nil && b.Deadline == nil:
		return 0
	case a.Deadline == nil:
		return 1
	case b.Deadline == nil:
		return -1
	default:
		return a.Deadline.Compare(*b.Deadline)
	}
}

// SortLane orders tasks in place with Compare. The sort is stable, so tied
// tasks keep their previous relative order.
func SortLane(tasks []Task) {
	slices.SortStableFunc(tasks, Compare)
}
