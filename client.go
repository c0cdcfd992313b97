package fullsend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// apiVersion is the Twilio Messaging API version segment of every request
// path.
const apiVersion = "2010-04-01"

// Client sends messages through the Twilio Messaging API. Build one with
// [New]; it is immutable afterwards and safe for concurrent use.
type Client struct {
	options *Options
	rest    *resty.Client
}

// New validates the supplied options and returns a ready-to-use Client.
// An account SID ([WithAccountSID]) and exactly one auth method
// ([WithAuthToken] or [WithAPIKey]) are required; everything else has
// defaults. There is no separate connect step.
func New(opts ...Option) (*Client, error) {
	options := newClientOptions()

	for _, opt := range opts {
		opt(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	username, password := options.basicAuth()

	rest := resty.New().
		SetBaseURL(options.baseURL).
		SetHeaders(options.requestHeaders).
		SetBasicAuth(username, password).
		SetLogger(options.requestLogger).
		SetRetryCount(options.retryCount).
		SetRetryWaitTime(options.retryWaitTime).
		SetRetryMaxWaitTime(options.retryMaxWaitTime).
		AddRetryCondition(options.retryPolicy)

	return &Client{
		options: options,
		rest:    rest,
	}, nil
}

// AccountSID returns the account SID the client was built with.
func (c *Client) AccountSID() string {
	return c.options.accountSID
}

// SendMessage submits msg to the Messages resource of the client's account
// and returns the decoded response.
//
// A non-2xx response yields an [*APIError] with Twilio's error code and
// message. A failure to obtain a response at all yields a
// [*TransportError]; the request is not retried unless [WithRetryCount] was
// set. A 2xx response whose body does not decode yields a [*DecodeError]
// carrying the raw body.
func (c *Client) SendMessage(ctx context.Context, msg *Message) (*SendOutcome, error) {
	if c == nil {
		return nil, errors.New("fullsend client is nil")
	}

	if msg == nil {
		return nil, errors.New("message must not be nil")
	}

	form, err := msg.values()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/%s/Accounts/%s/Messages.json", apiVersion, c.options.accountSID)

	c.options.requestLogger.Debugf("sending message to %s", msg.to)

	resp, err := c.rest.R().
		SetContext(ctx).
		SetFormDataFromValues(form).
		Post(path)
	if err != nil {
		c.options.requestLogger.Errorf("POST %s failed: %v", path, err)
		return nil, &TransportError{Op: "POST " + path, Err: err}
	}

	if resp.IsError() {
		apiErr := c.apiError(resp)
		c.options.requestLogger.Warnf("message to %s rejected: %v", msg.to, apiErr)

		return nil, apiErr
	}

	var outcome SendOutcome
	if err := json.Unmarshal(resp.Body(), &outcome); err != nil {
		return nil, &DecodeError{Body: resp.Body(), Err: err}
	}

	c.options.requestLogger.Debugf("message %s %s", outcome.Sid, outcome.Status)

	return &outcome, nil
}

// VerifyCredentials fetches the client's Account resource to confirm the
// configured credentials are accepted. It is optional: SendMessage works
// without a prior check.
func (c *Client) VerifyCredentials(ctx context.Context) error {
	if c == nil {
		return errors.New("fullsend client is nil")
	}

	path := fmt.Sprintf("/%s/Accounts/%s.json", apiVersion, c.options.accountSID)

	resp, err := c.rest.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return fmt.Errorf("failed to verify credentials: %w",
			&TransportError{Op: "GET " + path, Err: err})
	}

	if resp.IsError() {
		return fmt.Errorf("failed to verify credentials: %w", c.apiError(resp))
	}

	return nil
}

// Close releases idle connections held by the underlying transport. The
// client must not be used afterwards.
func (c *Client) Close() {
	if c == nil || c.rest == nil {
		return
	}

	c.rest.GetClient().CloseIdleConnections()
}

// apiError turns a non-2xx response into an *APIError. Bodies that don't
// parse as Twilio's error shape are surfaced raw.
func (c *Client) apiError(resp *resty.Response) *APIError {
	body := bytes.TrimSpace(resp.Body())

	if len(body) == 0 {
		return &APIError{
			Status:  resp.StatusCode(),
			Message: "(empty error body)",
		}
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
		return &APIError{
			Status:  resp.StatusCode(),
			Message: strings.TrimSpace(string(body)),
		}
	}

	apiErr.Status = resp.StatusCode()

	return &apiErr
}
