// Package fullsend sends messages through the Twilio Messaging REST API.
//
// The client wraps [github.com/go-resty/resty/v2] with Twilio
// authentication, typed errors, and pluggable logging.
//
// # Basic Usage
//
//	c, err := fullsend.New(
//	    fullsend.WithAccountSID(os.Getenv("TWILIO_ACCOUNT_SID")),
//	    fullsend.WithAuthToken(os.Getenv("TWILIO_ACCOUNT_TKN")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	msg, err := fullsend.NewMessage(
//	    fullsend.To("+15558675309"),
//	    fullsend.From("+15551234567"),
//	    fullsend.Body("howdy from fullsend!"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	outcome, err := c.SendMessage(ctx, msg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Printf("sent %s (%s)", outcome.Sid, outcome.Status)
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained; the full
// configuration is validated by [New] before a [Client] is returned, so a
// non-nil Client is always usable.
//
// # Authentication
//
// Account auth token authentication is configured with [WithAuthToken];
// API key authentication with [WithAPIKey]. The two methods are mutually
// exclusive. Either way the account SID ([WithAccountSID]) identifies the
// account in the request path.
//
// # Errors
//
// Rejected requests surface as [*APIError] carrying Twilio's error code,
// network failures as [*TransportError], and undecodable success bodies as
// [*DecodeError]. Missing required fields surface as the ErrNo* sentinel
// errors from [New] and [NewMessage].
//
// # Retry Behaviour
//
// Requests are attempted exactly once. Callers that want transparent
// retries opt in with [WithRetryCount]; [DefaultRetryPolicy] then retries
// on HTTP 429, 5xx and transient connection errors, never on context
// cancellation or DNS failures. Supply a custom function via
// [WithRetryPolicy] to override this behaviour.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewZapLogger] for
// [go.uber.org/zap]. The default [NoopLogger] discards all log output.
// Credentials are never written to the log.
package fullsend
