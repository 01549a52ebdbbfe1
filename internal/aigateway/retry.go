package aigateway

import (
	"context"
	"strings"
	"time"

	"github.com/dukerupert/tradeline/internal/telemetry"
	"github.com/sethvargo/go-retry"
)

// Model calls are retried twice, after 1.5s and then 3s.
const (
	retryBase       = 1500 * time.Millisecond
	retryMaxRetries = 2
)

var transientMarkers = []string{
	"429",
	"rate limit",
	"resource_exhausted",
	"503",
	"unavailable",
	"overloaded",
	"timeout",
	"deadline exceeded",
}

// IsTransient reports whether a model error is worth retrying. The SDK's
// errors are matched by message.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func defaultBackoff() retry.Backoff {
	return retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBase))
}

// generate calls the model with a per-attempt timeout, retrying transient
// failures.
func (g *Gateway) generate(ctx context.Context, action Action, p Prompt) (string, error) {
	var out string
	attempt := 0

	err := retry.Do(ctx, g.backoff(), func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			telemetry.Business.RecordAIRetry(action.String())
			g.logger.Warn("retrying model call", "action", action.String(), "attempt", attempt)
		}

		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		text, err := g.model.Generate(callCtx, p)
		if err != nil {
			if IsTransient(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		out = text
		return nil
	})
	return out, err
}
