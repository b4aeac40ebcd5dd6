package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/taskboard-sync/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, JSON marshaling, execution via httpclient.Client,
// response body cleanup on error, status code validation, error
// translation, and JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Do executes an HTTP request against the configured base URL.
//
// It marshals reqBody to JSON (if non-nil), sends the request, requires a 2xx
// status, and decodes the response body into respBody (if non-nil).
//
// On non-2xx status codes, the response is passed to TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, reqBody, respBody any) error {
	switch method {
	case http.MethodGet, http.MethodDelete:
		return r.withoutBody(ctx, method, path, respBody)
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return r.withBody(ctx, method, path, reqBody, respBody)
	default:
		return fmt.Errorf("unsupported HTTP method: %s", method)
	}
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

func (r *Requester) withoutBody(ctx context.Context, method, path string, respBody any) error {
	url := r.client.BaseURL() + path

	req, err := http.NewRequestWithContext(ctx, method, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")

	return r.execute(req, respBody)
}

func (r *Requester) withBody(ctx context.Context, method, path string, reqBody, respBody any) error {
	url := r.client.BaseURL() + path

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return r.execute(req, respBody)
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, respBody any) error {
	resp, err := r.client.Do(req.Context(), req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are exhausted
		// on a retryable status (e.g. 5xx). In that case, translate the HTTP
		// response into a domain error rather than returning the raw retry error.
		if resp != nil {
			defer r.closeBody(req.Context(), resp)
			if !isSuccess(resp.StatusCode) {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(req.Context(), "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(req.Context(), resp)

	if !isSuccess(resp.StatusCode) {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(req.Context(), "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
		)
		return translateErr
	}

	if respBody != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
