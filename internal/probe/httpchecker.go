package probe

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hamed0406/deephealth/internal/domain"
)

// DefaultTimeout bounds a single check (connect + response headers).
const DefaultTimeout = 5 * time.Second

type HTTPChecker struct {
	Client  *http.Client
	Timeout time.Duration
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	// No Client.Timeout: the deadline lives on the request context so a
	// timeout can be told apart from other transport errors.
	return &HTTPChecker{
		Client:  &http.Client{},
		Timeout: timeout,
	}
}

// Check issues one GET against target.URL and classifies the outcome.
// The request is abandoned once the timeout elapses; it is never retried.
func (h *HTTPChecker) Check(ctx context.Context, target domain.Target) domain.CheckResult {
	cctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	start := time.Now()
	status := h.do(cctx, target.URL)
	latency := time.Since(start).Milliseconds()

	return domain.CheckResult{
		Service:   target.Name,
		Status:    status,
		LatencyMS: latency,
	}
}

func (h *HTTPChecker) do(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Errored(err)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return domain.StatusTimeout
		}
		return domain.Errored(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return domain.StatusHealthy
	}
	return domain.Unhealthy(statusText(resp))
}

// statusText prefers the status line as received, e.g. "503 Service Unavailable".
func statusText(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return strconv.Itoa(resp.StatusCode)
}
