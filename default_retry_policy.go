package fullsend

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the retry condition installed by default. It only
// matters once retries are enabled with [WithRetryCount]; out of the box no
// request is retried.
//
// When enabled, it retries on HTTP 429 (Twilio's concurrency/rate limit)
// and 5xx responses, and on transient connection errors. It never retries
// on context cancellation, deadline exceeded, or DNS resolution failures.
// Non-2xx client errors such as 400 (invalid number) or 401 (bad
// credentials) are permanent and not retried.
//
// Supply a custom function via [WithRetryPolicy] to override this
// behaviour.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}

		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return false
		}

		// Remaining connection errors are assumed transient.
		return true
	}

	return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
}
