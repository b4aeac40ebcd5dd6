package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_ErrorsIs(t *testing.T) {
	t.Parallel()

	verr := NewValidationError("title", MsgRequired)

	if !errors.Is(verr, ErrValidation) {
		t.Error("errors.Is(ValidationError, ErrValidation) = false, want true")
	}

	wrapped := fmt.Errorf("moving task: %w", verr)
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("errors.Is(wrapped ValidationError, ErrValidation) = false, want true")
	}
}

func TestValidationError_ErrorsAs(t *testing.T) {
	t.Parallel()

	original := &ValidationError{Fields: map[string]string{
		"task_id":     MsgRequired,
		"target_lane": `invalid: "LATER"`,
	}}

	wrapped := fmt.Errorf("moving task: %w", original)

	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("errors.As(wrapped, *ValidationError) = false, want true")
	}
	if len(verr.Fields) != 2 {
		t.Errorf("ValidationError.Fields has %d entries, want 2", len(verr.Fields))
	}
	if verr.Fields["task_id"] != MsgRequired {
		t.Errorf("Fields[\"task_id\"] = %q, want %q", verr.Fields["task_id"], MsgRequired)
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{
		"title": MsgRequired,
		"id":    MsgRequired,
	}}

	want := "validation error: id: is required; title: is required"
	if got := verr.Error(); got != want {
		t.Errorf("ValidationError.Error() = %q, want %q", got, want)
	}
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrValidation", ErrValidation},
		{"ErrConflict", ErrConflict},
		{"ErrForbidden", ErrForbidden},
		{"ErrUnavailable", ErrUnavailable},
	}

	for _, tt := range sentinels {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false", tt.name)
			}
		})
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a.err, b.err) {
				t.Errorf("%s and %s should be distinct", a.name, b.name)
			}
		}
	}
}
