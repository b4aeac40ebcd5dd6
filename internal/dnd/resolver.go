package dnd

import (
	"fmt"
	"sync"

	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
)

// ZoneKind tells lane drop zones apart from task drop zones.
type ZoneKind string

const (
	ZoneLane ZoneKind = "lane"
	ZoneTask ZoneKind = "task"
)

// Zone is a registered drop target. A task zone also names the task it
// covers; its lane is taken from the board at resolve time.
type Zone struct {
	ID     string      `json:"id"`
	Kind   ZoneKind    `json:"kind"`
	Lane   task.Status `json:"lane,omitempty"`
	TaskID string      `json:"taskId,omitempty"`
	Rect   Rect        `json:"rect"`
}

// Validate checks the zone's fields.
func (z Zone) Validate() error {
	fields := make(map[string]string)
	if z.ID == "" {
		fields["id"] = domain.MsgRequired
	}
	switch z.Kind {
	case ZoneLane:
		if !z.Lane.IsValid() {
			fields["lane"] = fmt.Sprintf("invalid: %q", z.Lane)
		}
	case ZoneTask:
		if z.TaskID == "" {
			fields["taskId"] = domain.MsgRequired
		}
	default:
		fields["kind"] = fmt.Sprintf("invalid: %q", z.Kind)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Target is a resolved drop position.
type Target struct {
	Lane  task.Status `json:"lane"`
	Index int         `json:"index"`
	// ZoneID is the zone that produced the target; empty for keyboard moves.
	ZoneID string `json:"zoneId,omitempty"`
	// OverTaskID is the task under the active item, if any.
	OverTaskID string `json:"overTaskId,omitempty"`
}

// Strategy selects how overlapping zones are ranked.
type Strategy string

const (
	// GreatestIntersection picks the zone with the highest intersection
	// ratio (shared area over combined area) with the dragged item, so a card
	// covered by the item beats the lane that contains it. Ties go to task
	// zones over lane zones, then to the zone registered first.
	GreatestIntersection Strategy = "greatest_intersection"
	// FirstOverlap picks the first registered zone that overlaps at all.
	FirstOverlap Strategy = "first_overlap"
)

// IsValid returns true if the strategy is one of the defined constants.
func (s Strategy) IsValid() bool {
	return s == GreatestIntersection || s == FirstOverlap
}

// Direction is a keyboard navigation step.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// BoardSource provides the board the resolver maps zones onto.
type BoardSource interface {
	Snapshot() board.Board
}

// Resolver maps the geometry of a dragged item onto a drop target. Zones are
// replaced wholesale with SetZones whenever the view lays out a new frame.
type Resolver struct {
	source   BoardSource
	strategy Strategy

	mu    sync.RWMutex
	zones []Zone
}

// NewResolver creates a resolver over the given board. An invalid strategy
// falls back to GreatestIntersection.
func NewResolver(source BoardSource, strategy Strategy) *Resolver {
	if !strategy.IsValid() {
		strategy = GreatestIntersection
	}
	return &Resolver{source: source, strategy: strategy}
}

// SetZones replaces the registered zones. Registration order is the order of
// zones and is used for tie-breaking.
func (r *Resolver) SetZones(zones []Zone) error {
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return fmt.Errorf("zone %q: %w", z.ID, err)
		}
	}
	cp := make([]Zone, len(zones))
	copy(cp, zones)

	r.mu.Lock()
	r.zones = cp
	r.mu.Unlock()
	return nil
}

// Zones returns a copy of the registered zones.
func (r *Resolver) Zones() []Zone {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Zone, len(r.zones))
	copy(out, r.zones)
	return out
}

// TaskRect returns the rectangle of the task zone registered for id.
func (r *Resolver) TaskRect(id string) (Rect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, z := range r.zones {
		if z.Kind == ZoneTask && z.TaskID == id {
			return z.Rect, true
		}
	}
	return Rect{}, false
}

// Resolve returns the drop target under active, the current rectangle of the
// dragged task activeID. The result is deterministic for a given board and
// zone set. ok is false when no zone is hit.
func (r *Resolver) Resolve(activeID string, active Rect) (Target, bool) {
	b := r.source.Snapshot()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		best      Target
		bestRatio float64
		bestTask  bool
		found     bool
	)
	for _, z := range r.zones {
		ratio := intersectionRatio(z.Rect, active)
		if ratio <= 0 {
			continue
		}
		t, ok := targetFor(b, z, activeID)
		if !ok {
			continue
		}
		if r.strategy == FirstOverlap {
			return t, true
		}
		isTask := z.Kind == ZoneTask
		if !found || ratio > bestRatio || (ratio == bestRatio && isTask && !bestTask) {
			best, bestRatio, bestTask, found = t, ratio, isTask, true
		}
	}
	return best, found
}

// Next returns the target one keyboard step from current. Up and Down move
// within the lane; Left and Right move to the neighbouring lane, keeping the
// index where possible. ok is false at the edge of the board.
func (r *Resolver) Next(activeID string, current Target, dir Direction) (Target, bool) {
	b := r.source.Snapshot()
	lanes := task.Lanes()
	li := current.Lane.Index()
	if li < 0 {
		return current, false
	}

	lane := current.Lane
	idx := current.Index
	switch dir {
	case Up:
		if idx <= 0 {
			return current, false
		}
		idx--
	case Down:
		if idx >= laneEnd(b, lane, activeID) {
			return current, false
		}
		idx++
	case Left, Right:
		step := -1
		if dir == Right {
			step = 1
		}
		if li+step < 0 || li+step >= len(lanes) {
			return current, false
		}
		lane = lanes[li+step]
		idx = min(idx, laneEnd(b, lane, activeID))
	default:
		return current, false
	}

	t := Target{Lane: lane, Index: idx}
	if l := b.Lane(lane); idx < len(l) {
		t.OverTaskID = l[idx].ID
	}
	return t, true
}

// intersectionRatio is the shared area of a and b divided by their union.
func intersectionRatio(a, b Rect) float64 {
	shared := a.Intersect(b).Area()
	if shared <= 0 {
		return 0
	}
	return shared / (a.Area() + b.Area() - shared)
}

// targetFor converts a zone hit into a lane and index. Zones for tasks that
// are no longer on the board are ignored.
func targetFor(b board.Board, z Zone, activeID string) (Target, bool) {
	switch z.Kind {
	case ZoneTask:
		lane, idx, ok := b.Locate(z.TaskID)
		if !ok {
			return Target{}, false
		}
		return Target{Lane: lane, Index: idx, ZoneID: z.ID, OverTaskID: z.TaskID}, true
	case ZoneLane:
		return Target{Lane: z.Lane, Index: laneEnd(b, z.Lane, activeID), ZoneID: z.ID}, true
	default:
		return Target{}, false
	}
}

// laneEnd is the index of the last slot in lane: its length, or one less
// when the active task already lives there.
func laneEnd(b board.Board, lane task.Status, activeID string) int {
	n := len(b.Lane(lane))
	if l, _, ok := b.Locate(activeID); ok && l == lane {
		return n - 1
	}
	return n
}
