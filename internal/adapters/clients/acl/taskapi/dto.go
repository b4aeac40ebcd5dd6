// Package taskapi implements the Anti-Corruption Layer translators for the
// downstream task API's task resources.
package taskapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Envelope wraps every downstream task API response.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// TaskDTO matches the downstream task schema.
type TaskDTO struct {
	ID          FlexibleID `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority,omitempty"`
	Deadline    *string    `json:"deadline"`
	WorkspaceID FlexibleID `json:"workspaceId,omitzero"`
}

// FlexibleID accepts identifiers encoded either as JSON strings or numbers
// and marshals back in the encoding it was read with.
type FlexibleID struct {
	value   string
	numeric bool
}

// StringID returns an identifier that marshals as a JSON string.
func StringID(s string) FlexibleID {
	return FlexibleID{value: s}
}

// NumberID returns an identifier that marshals as a JSON number. A value
// that is not a valid number still marshals as a string.
func NumberID(s string) FlexibleID {
	return FlexibleID{value: s, numeric: true}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = FlexibleID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = NumberID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = NumberID(n.String())
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (id FlexibleID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		if _, err := strconv.ParseFloat(id.value, 64); err == nil {
			return []byte(id.value), nil
		}
	}
	return json.Marshal(id.value)
}

// String returns the identifier as a string.
func (id FlexibleID) String() string {
	return id.value
}

// IsNumeric reports whether the identifier marshals as a JSON number.
func (id FlexibleID) IsNumeric() bool {
	return id.numeric
}

// IsZero reports whether the identifier is empty.
func (id FlexibleID) IsZero() bool {
	return id.value == ""
}
