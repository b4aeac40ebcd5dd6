package dnd

import (
	"slices"
	"time"
)

// SensorKind identifies an input source.
type SensorKind string

const (
	SensorPointer  SensorKind = "pointer"
	SensorTouch    SensorKind = "touch"
	SensorKeyboard SensorKind = "keyboard"
)

// Activation is the outcome of checking a pressed sensor's constraint.
type Activation int

const (
	// Waiting means the constraint is not met yet.
	Waiting Activation = iota
	Activated
	// Aborted means the gesture can no longer become a drag.
	Aborted
)

// PointerSensor activates once the pointer has travelled Distance pixels
// from where it was pressed.
type PointerSensor struct {
	Distance float64
}

// Check evaluates the activation constraint.
func (s PointerSensor) Check(origin, current Point, _ time.Duration) Activation {
	if origin.Distance(current) >= s.Distance {
		return Activated
	}
	return Waiting
}

// TouchSensor activates after the finger has been held for Delay. Moving
// further than Tolerance before that aborts the gesture.
type TouchSensor struct {
	Delay     time.Duration
	Tolerance float64
}

// Check evaluates the activation constraint.
func (s TouchSensor) Check(origin, current Point, held time.Duration) Activation {
	if origin.Distance(current) > s.Tolerance && held < s.Delay {
		return Aborted
	}
	if held >= s.Delay {
		return Activated
	}
	return Waiting
}

// KeyboardSensor maps key codes onto drag commands.
type KeyboardSensor struct {
	Start  []string
	End    []string
	Cancel []string
}

// KeyCommand is what a key press means to an active keyboard drag.
type KeyCommand int

const (
	KeyNone KeyCommand = iota
	KeyStart
	KeyEnd
	KeyCancel
	KeyMove
)

// Command classifies key for the given drag phase. Arrow keys also report
// their direction.
func (s KeyboardSensor) Command(key string, dragging bool) (KeyCommand, Direction) {
	if !dragging {
		if slices.Contains(s.Start, key) {
			return KeyStart, ""
		}
		return KeyNone, ""
	}
	switch {
	case slices.Contains(s.Cancel, key):
		return KeyCancel, ""
	case slices.Contains(s.End, key):
		return KeyEnd, ""
	}
	switch key {
	case "ArrowUp":
		return KeyMove, Up
	case "ArrowDown":
		return KeyMove, Down
	case "ArrowLeft":
		return KeyMove, Left
	case "ArrowRight":
		return KeyMove, Right
	}
	return KeyNone, ""
}

// Sensors bundles the configured input sensors.
type Sensors struct {
	Pointer  PointerSensor
	Touch    TouchSensor
	Keyboard KeyboardSensor
}

// DefaultSensors returns the stock activation constraints.
func DefaultSensors() Sensors {
	return Sensors{
		Pointer: PointerSensor{Distance: 2},
		Touch:   TouchSensor{Delay: 0, Tolerance: 8},
		Keyboard: KeyboardSensor{
			Start:  []string{"Enter", "Space"},
			End:    []string{"Enter", "Space"},
			Cancel: []string{"Escape"},
		},
	}
}
