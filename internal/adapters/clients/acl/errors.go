// Package acl implements the Anti-Corruption Layer that translates between
// the downstream task API's representations and domain types. Resource
// translators live in the acl/taskapi subpackage; shared request handling
// and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/taskboard-sync/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// problemDetail represents an RFC 7807 Problem Details response from the
// downstream API. Message carries the task API's envelope message, which is
// used as the detail when no problem document is returned.
type problemDetail struct {
	Detail  string        `json:"detail"`
	Message string        `json:"message"`
	Errors  []errorDetail `json:"errors"`
}

// errorDetail represents a single field-level error within an RFC 7807 response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps an HTTP error response to a domain error.
// It parses the response body as RFC 7807 when the content type is
// application/problem+json, or as the task API's {success, message}
// envelope when it is application/json, using the detail or message for
// context.
// For 400/422 responses with field-level errors, it returns a
// *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = pd.Message
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseProblemDetail attempts to read and parse an RFC 7807 or JSON envelope
// body from the response. Returns an empty problemDetail if parsing fails.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") && !strings.HasPrefix(ct, "application/json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError converts RFC 7807 error details to a domain ValidationError.
// It strips the "body." prefix from locations to produce clean field names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
