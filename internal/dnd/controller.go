// Package dnd turns raw pointer, touch and keyboard input into move intents.
//
// A Controller owns at most one drag session per board. While a session is
// active it asks the Resolver for the drop target on every move, and on
// release it hands the resulting board.MoveIntent to a Mover.
package dnd

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
)

// Commit is an in-flight move started by a Mover.
type Commit interface {
	ID() string
	Done() <-chan struct{}
}

// Mover applies a drop. It returns a nil Commit when the move turned out to
// be a no-op.
type Mover interface {
	Move(ctx context.Context, intent board.MoveIntent) (Commit, error)
}

// press is a pointer or touch press that has not met its activation
// constraint yet.
type press struct {
	sensor SensorKind
	taskID string
	origin Point
	at     time.Time
}

// Controller is the drag state machine of one board:
// idle -> dragging -> idle, or dragging -> committing -> idle once the
// committed move finishes.
type Controller struct {
	resolver *Resolver
	source   BoardSource
	mover    Mover
	sensors  Sensors
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	phase     Phase
	pending   *press
	session   *Session
	over      *Target
	startRect Rect
	txID      string
}

// NewController creates an idle controller. A nil logger discards output.
func NewController(source BoardSource, resolver *Resolver, mover Mover, sensors Sensors, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		resolver: resolver,
		source:   source,
		mover:    mover,
		sensors:  sensors,
		logger:   logger,
		now:      time.Now,
		phase:    PhaseIdle,
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Handle feeds one input event to the controller and returns the resulting
// state. Events from a sensor other than the one that started the current
// session are ignored.
func (c *Controller) Handle(ctx context.Context, ev Event) (State, error) {
	if ev.At.IsZero() {
		ev.At = c.now()
	}

	c.mu.Lock()
	var (
		drop *board.MoveIntent
		err  error
	)
	switch ev.Type {
	case EventStart:
		err = c.pressLocked(ev)
	case EventMove:
		c.moveLocked(ev)
	case EventEnd:
		drop = c.releaseLocked(ev)
	case EventCancel:
		c.cancelLocked()
	case EventKey:
		drop, err = c.keyLocked(ev)
	default:
		err = domain.NewValidationError("type", fmt.Sprintf("invalid: %q", ev.Type))
	}

	if drop == nil {
		st := c.stateLocked()
		c.mu.Unlock()
		return st, err
	}

	c.phase = PhaseCommitting
	sessionID := c.session.ID
	c.mu.Unlock()

	commit, err := c.mover.Move(ctx, *drop)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil || commit == nil {
		if err != nil {
			c.logger.ErrorContext(ctx, "drop rejected",
				slog.String("operation", "Controller.Handle"),
				slog.String("task_id", drop.TaskID),
				slog.Any("error", err),
			)
		}
		c.resetIfLocked(sessionID)
		return c.stateLocked(), err
	}

	c.txID = commit.ID()
	go c.await(sessionID, commit)
	return c.stateLocked(), nil
}

func (c *Controller) await(sessionID string, commit Commit) {
	<-commit.Done()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetIfLocked(sessionID)
}

func (c *Controller) pressLocked(ev Event) error {
	if ev.Sensor != SensorPointer && ev.Sensor != SensorTouch {
		return domain.NewValidationError("sensor", fmt.Sprintf("invalid for start: %q", ev.Sensor))
	}
	if ev.TaskID == "" {
		return domain.NewValidationError("taskId", domain.MsgRequired)
	}
	if c.phase != PhaseIdle || c.pending != nil {
		return nil
	}
	if _, ok := c.source.Snapshot().Task(ev.TaskID); !ok {
		return fmt.Errorf("task %s: %w", ev.TaskID, domain.ErrNotFound)
	}

	c.pending = &press{sensor: ev.Sensor, taskID: ev.TaskID, origin: ev.Point, at: ev.At}
	c.activateLocked(ev)
	return nil
}

func (c *Controller) moveLocked(ev Event) {
	if c.pending != nil && c.pending.sensor == ev.Sensor {
		c.activateLocked(ev)
		return
	}
	if c.phase == PhaseDragging && c.session.Sensor == ev.Sensor && ev.Sensor != SensorKeyboard {
		c.trackLocked(ev)
	}
}

func (c *Controller) releaseLocked(ev Event) *board.MoveIntent {
	if c.pending != nil && c.pending.sensor == ev.Sensor {
		c.pending = nil
		return nil
	}
	if c.phase != PhaseDragging || c.session.Sensor != ev.Sensor {
		return nil
	}
	if ev.Sensor != SensorKeyboard {
		c.trackLocked(ev)
	}
	return c.dropLocked()
}

func (c *Controller) cancelLocked() {
	if c.phase == PhaseDragging || c.pending != nil {
		c.resetLocked()
	}
}

func (c *Controller) keyLocked(ev Event) (*board.MoveIntent, error) {
	kb := c.sensors.Keyboard

	switch c.phase {
	case PhaseIdle:
		if c.pending != nil {
			if cmd, _ := kb.Command(ev.Key, true); cmd == KeyCancel {
				c.pending = nil
			}
			return nil, nil
		}
		if cmd, _ := kb.Command(ev.Key, false); cmd != KeyStart {
			return nil, nil
		}
		if ev.TaskID == "" {
			return nil, domain.NewValidationError("taskId", domain.MsgRequired)
		}
		if !c.beginLocked(SensorKeyboard, ev.TaskID, ev.Point, ev.At) {
			return nil, fmt.Errorf("task %s: %w", ev.TaskID, domain.ErrNotFound)
		}
		c.over = &Target{
			Lane:       c.session.SourceLane,
			Index:      c.session.SourceIndex,
			OverTaskID: c.session.TaskID,
		}
		return nil, nil

	case PhaseDragging:
		cmd, dir := kb.Command(ev.Key, true)
		if c.session.Sensor != SensorKeyboard {
			if cmd == KeyCancel {
				c.resetLocked()
			}
			return nil, nil
		}
		switch cmd {
		case KeyCancel:
			c.resetLocked()
		case KeyEnd:
			return c.dropLocked(), nil
		case KeyMove:
			cur := Target{Lane: c.session.SourceLane, Index: c.session.SourceIndex}
			if c.over != nil {
				cur = *c.over
			}
			if next, ok := c.resolver.Next(c.session.TaskID, cur, dir); ok {
				c.over = &next
			}
		}
	}
	return nil, nil
}

// activateLocked checks the pending press against its sensor's constraint.
func (c *Controller) activateLocked(ev Event) {
	p := c.pending
	var result Activation
	switch p.sensor {
	case SensorPointer:
		result = c.sensors.Pointer.Check(p.origin, ev.Point, ev.At.Sub(p.at))
	case SensorTouch:
		result = c.sensors.Touch.Check(p.origin, ev.Point, ev.At.Sub(p.at))
	}

	switch result {
	case Aborted:
		c.pending = nil
	case Activated:
		c.pending = nil
		if c.beginLocked(p.sensor, p.taskID, p.origin, p.at) {
			c.trackLocked(ev)
		}
	}
}

func (c *Controller) beginLocked(sensor SensorKind, taskID string, origin Point, at time.Time) bool {
	lane, idx, ok := c.source.Snapshot().Locate(taskID)
	if !ok {
		return false
	}
	c.session = &Session{
		ID:          uuid.NewString(),
		TaskID:      taskID,
		SourceLane:  lane,
		SourceIndex: idx,
		Sensor:      sensor,
		Origin:      origin,
		StartedAt:   at,
	}
	c.phase = PhaseDragging
	c.startRect, _ = c.resolver.TaskRect(taskID)
	c.logger.Debug("drag started",
		slog.String("session_id", c.session.ID),
		slog.String("task_id", taskID),
		slog.String("sensor", string(sensor)),
	)
	return true
}

// trackLocked re-resolves the drop target for the dragged item's position.
func (c *Controller) trackLocked(ev Event) {
	rect := ev.Rect
	if rect.Empty() {
		if !c.startRect.Empty() {
			rect = c.startRect.Translate(ev.Point.Sub(c.session.Origin))
		} else {
			rect = Rect{X: ev.Point.X, Y: ev.Point.Y, Width: 1, Height: 1}
		}
	}
	if t, ok := c.resolver.Resolve(c.session.TaskID, rect); ok {
		c.over = &t
	} else {
		c.over = nil
	}
}

// dropLocked ends the session and returns the intent to commit, or nil when
// the drop changes nothing.
func (c *Controller) dropLocked() *board.MoveIntent {
	s := c.session
	if c.over == nil {
		c.resetLocked()
		return nil
	}
	intent := board.MoveIntent{
		TaskID:      s.TaskID,
		SourceLane:  s.SourceLane,
		SourceIndex: s.SourceIndex,
		TargetLane:  c.over.Lane,
		TargetIndex: c.over.Index,
		OverTaskID:  c.over.OverTaskID,
	}
	if intent.IsNoop() {
		c.resetLocked()
		return nil
	}
	return &intent
}

func (c *Controller) resetIfLocked(sessionID string) {
	if c.session != nil && c.session.ID == sessionID {
		c.resetLocked()
	}
}

func (c *Controller) resetLocked() {
	c.phase = PhaseIdle
	c.pending = nil
	c.session = nil
	c.over = nil
	c.startRect = Rect{}
	c.txID = ""
}

func (c *Controller) stateLocked() State {
	st := State{Phase: c.phase, TransactionID: c.txID}
	if c.session != nil {
		s := *c.session
		st.Session = &s
	}
	if c.over != nil {
		o := *c.over
		st.Over = &o
	}
	return st
}
