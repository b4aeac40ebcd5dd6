package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/taskboard-sync/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// ErrRetryStopped is returned when a request failed and further attempts
// were called off through [WithRetryStop].
var ErrRetryStopped = errors.New("httpclient: retries stopped")

type retryStopKey struct{}

// WithRetryStop returns a context under which the client makes no further
// attempts once stop is closed. An attempt already on the wire is not
// interrupted; use context cancellation for that.
func WithRetryStop(ctx context.Context, stop <-chan struct{}) context.Context {
	return context.WithValue(ctx, retryStopKey{}, stop)
}

func retryStopped(ctx context.Context) bool {
	stop, _ := ctx.Value(retryStopKey{}).(<-chan struct{})
	if stop == nil {
		return false
	}
	select {
	case <-stop:
		return true
	default:
		return false
	}
}

// doWithRetry sends req up to maxAttempts times. Failed attempts are retried
// after an exponential backoff with ±25% jitter, or after the server's
// Retry-After hint when it sent one. The body is buffered for replay. The
// result is written to resp so the bodyclose linter can follow it; the caller
// closes the body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := range c.retryCfg.maxAttempts {
		if attempt > 0 {
			if retryStopped(ctx) {
				return fmt.Errorf("%w after %d attempt(s): %w", ErrRetryStopped, attempt, lastErr)
			}
			if err := c.waitForRetry(ctx, req, attempt, hint, lastErr); err != nil {
				return err
			}
		}

		resetRequestBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr, hint = err, 0
			if !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		hint = retryAfter(r.Header.Get("Retry-After"), time.Now())

		// The last response goes back with its body intact so the caller can
		// translate it.
		if attempt == c.retryCfg.maxAttempts-1 || retryStopped(ctx) {
			*resp = r
			return lastErr
		}
		drainResponseBody(r)
	}

	return lastErr
}

// bufferRequestBody reads and closes the request body so it can be replayed.
// A nil body yields nil.
func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	return b, nil
}

func resetRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody discards the body so the connection can be reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// waitForRetry logs the retry at WARN level and sleeps for the server hint,
// if any, or the computed backoff. Either is capped at maxInterval.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, hint time.Duration, lastErr error) error {
	delay := backoff(attempt, c.retryCfg)
	if hint > 0 {
		delay = min(hint, c.retryCfg.maxInterval)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff returns the delay before retry number attempt (1 is the first
// retry): initialInterval * multiplier^(attempt-1), capped at maxInterval,
// then jittered by ±25%.
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	delay = min(delay, float64(cfg.maxInterval))

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)
	return time.Duration(max(delay, 0))
}

// retryAfter parses a Retry-After header given either as delta seconds or as
// an HTTP date. Missing, malformed and past values yield zero.
func retryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; any other transport error is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

// isRetryableStatus reports whether the task API may succeed on a later
// attempt: 429, 408 and any 5xx.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests, http.StatusRequestTimeout:
		return true
	}
	return statusCode >= http.StatusInternalServerError
}
