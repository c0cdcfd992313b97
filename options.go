package fullsend

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the Twilio API endpoint used unless [WithBaseURL]
// overrides it.
const DefaultBaseURL = "https://api.twilio.com"

type Option func(*Options)

type Options struct {
	accountSID       string
	authToken        string
	apiKeySID        string
	apiKeySecret     string
	baseURL          string
	retryCount       int
	retryWaitTime    time.Duration
	retryMaxWaitTime time.Duration
	requestLogger    RequestLogger
	retryPolicy      func(*resty.Response, error) bool
	requestHeaders   map[string]string
}

func newClientOptions() *Options {
	return &Options{
		baseURL:          DefaultBaseURL,
		retryCount:       0,
		retryWaitTime:    500 * time.Millisecond,
		retryMaxWaitTime: 3 * time.Second,
		requestLogger:    &NoopLogger{},
		retryPolicy:      DefaultRetryPolicy,
		requestHeaders: map[string]string{
			"Accept": "application/json",
		},
	}
}

// WithAccountSID sets the Twilio account SID. The account SID appears in the
// request path and, unless [WithAPIKey] is used, serves as the HTTP Basic
// auth username.
func WithAccountSID(sid string) Option {
	return func(o *Options) {
		o.accountSID = strings.TrimSpace(sid)
	}
}

// WithAuthToken configures account auth token authentication: HTTP Basic
// with username=account SID, password=token. Mutually exclusive with
// [WithAPIKey].
func WithAuthToken(token string) Option {
	return func(o *Options) {
		o.authToken = token
	}
}

// WithAPIKey configures API key authentication: HTTP Basic with
// username=key SID, password=key secret. Mutually exclusive with
// [WithAuthToken].
func WithAPIKey(keySID, secret string) Option {
	return func(o *Options) {
		o.apiKeySID = strings.TrimSpace(keySID)
		o.apiKeySecret = secret
	}
}

// WithBaseURL overrides [DefaultBaseURL]. Empty values are ignored.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimSpace(baseURL)
		if baseURL != "" {
			o.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithRetryCount enables transparent retries of failed requests. The default
// is 0: every request is attempted exactly once unless the caller opts in.
func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime >= 100*time.Millisecond {
			o.retryWaitTime = waitTime
		}
	}
}

func WithRetryMaxWaitTime(maxWaitTime time.Duration) Option {
	return func(o *Options) {
		if maxWaitTime >= 100*time.Millisecond {
			o.retryMaxWaitTime = maxWaitTime
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

// WithRequestHeader sets an additional header on every request. The Accept,
// Content-Type and Authorization headers are managed by the client and
// cannot be overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, "Content-Type") ||
			strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, "Authorization") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// Validate reports the first configuration problem, or nil. [New] calls it
// before constructing a Client.
func (o *Options) Validate() error {
	if o.accountSID == "" {
		return ErrNoAccountSIDSet
	}

	hasToken := o.authToken != ""
	hasAPIKey := o.apiKeySID != "" || o.apiKeySecret != ""

	if !hasToken && !hasAPIKey {
		return ErrNoAuthSet
	}

	if hasToken && hasAPIKey {
		return errors.New("cannot use both auth token and API key auth - choose one")
	}

	if hasAPIKey && (o.apiKeySID == "" || o.apiKeySecret == "") {
		return errors.New("API key auth requires both key SID and secret")
	}

	if o.baseURL == "" {
		return errors.New("base URL must be set")
	}

	if o.retryCount < 0 {
		return errors.New("retryCount must be non-negative")
	}

	if o.retryCount > 100 {
		return errors.New("retryCount must not exceed 100")
	}

	if o.retryWaitTime < 100*time.Millisecond {
		return errors.New("retryWaitTime must be at least 100ms")
	}

	if o.retryWaitTime > time.Minute {
		return errors.New("retryWaitTime must not exceed 1m0s")
	}

	if o.retryMaxWaitTime < 100*time.Millisecond {
		return errors.New("retryMaxWaitTime must be at least 100ms")
	}

	if o.retryMaxWaitTime > 5*time.Minute {
		return errors.New("retryMaxWaitTime must not exceed 5m0s")
	}

	if o.retryMaxWaitTime < o.retryWaitTime {
		return fmt.Errorf("retryMaxWaitTime (%v) must be greater than or equal to retryWaitTime (%v)",
			o.retryMaxWaitTime, o.retryWaitTime)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.retryPolicy == nil {
		return errors.New("retryPolicy must not be nil")
	}

	return nil
}

// basicAuth returns the HTTP Basic credentials implied by the configured
// auth method.
func (o *Options) basicAuth() (username, password string) {
	if o.authToken != "" {
		return o.accountSID, o.authToken
	}

	return o.apiKeySID, o.apiKeySecret
}
