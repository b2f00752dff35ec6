package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/nblaunch/internal/ctxlog"
	"resty.dev/v3"
)

// DefaultTimeout bounds how long WaitReady polls before giving up.
const DefaultTimeout = 30 * time.Second

// pollInterval is the delay between successive probe attempts.
const pollInterval = 500 * time.Millisecond

// WaitReady polls url until it answers with a success status, the timeout
// lapses, or ctx is cancelled. Notebook servers redirect or serve a login
// page at their root, both of which count as an answer.
func WaitReady(ctx context.Context, url string, timeout time.Duration) error {
	logger := ctxlog.FromContext(ctx)

	client := resty.New().SetTimeout(pollInterval)
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		resp, err := client.R().SetContext(ctx).Get(url)
		if err == nil && resp.StatusCode() > 0 && resp.StatusCode() < 500 {
			logger.Debug("Server answered the readiness probe.", "url", url, "status", resp.StatusCode())
			return nil
		}
		if err != nil {
			logger.Debug("Readiness probe attempt failed.", "url", url, "error", err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("server at %s not ready: %w", url, ctx.Err())
		case <-ticker.C:
		}
	}
}
