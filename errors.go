package fullsend

import (
	"errors"
	"fmt"
)

// Build errors returned by [New] and [NewMessage] when a required field is
// missing.
var (
	// ErrNoAccountSIDSet is returned by [New] when no account SID was
	// supplied via [WithAccountSID].
	ErrNoAccountSIDSet = errors.New("no account SID set")

	// ErrNoAuthSet is returned by [New] when neither [WithAuthToken] nor
	// [WithAPIKey] was supplied.
	ErrNoAuthSet = errors.New("no auth token or API key set")

	// ErrNoToSet is returned by [NewMessage] when no destination was
	// supplied via [To].
	ErrNoToSet = errors.New("no 'to' field set")

	// ErrNoSenderSet is returned by [NewMessage] when neither [From] nor
	// [MessagingServiceSID] was supplied.
	ErrNoSenderSet = errors.New("no sender set")

	// ErrNoContentSet is returned by [NewMessage] when neither [Body] nor
	// [ContentSID] was supplied.
	ErrNoContentSet = errors.New("no body or content SID set")
)

// APIError is returned by [Client.SendMessage] and
// [Client.VerifyCredentials] when Twilio responds with a non-2xx status.
// Code and MoreInfo are populated when the error body parses as Twilio's
// error shape; otherwise Message carries the raw body.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int `json:"status"`

	// Code is the Twilio error code, e.g. 21211 for an invalid 'To'
	// number. Zero when the body did not parse as a Twilio error.
	Code int `json:"code"`

	// Message is the human-readable error description.
	Message string `json:"message"`

	// MoreInfo is a URL documenting the error code, when provided.
	MoreInfo string `json:"more_info"`
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("twilio: %d (HTTP %d): %s", e.Code, e.Status, e.Message)
	}

	return fmt.Sprintf("twilio: HTTP %d: %s", e.Status, e.Message)
}

// TransportError is returned when the request failed before a response was
// obtained (connection refused, TLS failure, DNS error, timeout). The
// underlying error is reachable via [errors.Is] and [errors.As].
type TransportError struct {
	// Op describes the attempted request, e.g. "POST /2010-04-01/...".
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is returned when a 2xx response body does not parse as the
// expected JSON shape. Body carries the raw response for diagnostics.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response body: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
