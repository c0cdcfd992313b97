package fullsend

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Message describes a single outbound message. Build one with [NewMessage];
// it is immutable afterwards and is consumed by [Client.SendMessage].
type Message struct {
	to                  string
	from                string
	messagingServiceSID string
	body                string
	contentSID          string
	contentVariables    map[string]string
	statusCallback      string
	mediaURL            string
}

type MessageOption func(*Message)

// To sets the destination phone number. Required. The number is passed to
// the API verbatim; format validation is Twilio's responsibility.
func To(to string) MessageOption {
	return func(m *Message) {
		m.to = to
	}
}

// From sets the sender phone number. A message needs a sender: either From
// or [MessagingServiceSID] (or both).
func From(from string) MessageOption {
	return func(m *Message) {
		m.from = from
	}
}

// MessagingServiceSID routes the message through a Twilio Messaging Service
// instead of (or in addition to) a fixed sender number.
func MessagingServiceSID(sid string) MessageOption {
	return func(m *Message) {
		m.messagingServiceSID = sid
	}
}

// Body sets the message text. A message needs content: either Body or
// [ContentSID].
func Body(body string) MessageOption {
	return func(m *Message) {
		m.body = body
	}
}

// ContentSID selects a Twilio content template as the message content.
func ContentSID(sid string) MessageOption {
	return func(m *Message) {
		m.contentSID = sid
	}
}

// ContentVariables supplies the values substituted into a content template's
// placeholders. Only meaningful together with [ContentSID].
func ContentVariables(vars map[string]string) MessageOption {
	return func(m *Message) {
		m.contentVariables = vars
	}
}

// StatusCallback sets a URL Twilio will POST delivery status updates to.
func StatusCallback(callbackURL string) MessageOption {
	return func(m *Message) {
		m.statusCallback = callbackURL
	}
}

// MediaURL attaches media to the message, making it an MMS.
func MediaURL(mediaURL string) MessageOption {
	return func(m *Message) {
		m.mediaURL = mediaURL
	}
}

// NewMessage builds a Message from the given options. It returns
// [ErrNoToSet] when no destination is set, [ErrNoSenderSet] when neither a
// sender number nor a messaging service SID is set, and [ErrNoContentSet]
// when neither a body nor a content SID is set.
func NewMessage(opts ...MessageOption) (*Message, error) {
	m := &Message{}

	for _, opt := range opts {
		opt(m)
	}

	if m.to == "" {
		return nil, ErrNoToSet
	}

	if m.from == "" && m.messagingServiceSID == "" {
		return nil, ErrNoSenderSet
	}

	if m.body == "" && m.contentSID == "" {
		return nil, ErrNoContentSet
	}

	return m, nil
}

// To returns the destination phone number.
func (m *Message) To() string { return m.to }

// From returns the sender phone number, or "" when the message is routed
// through a messaging service.
func (m *Message) From() string { return m.from }

// Body returns the message text, or "" for content-template messages.
func (m *Message) Body() string { return m.body }

// values renders the message as the form fields of the Messages resource.
func (m *Message) values() (url.Values, error) {
	v := url.Values{}
	v.Set("To", m.to)

	if m.from != "" {
		v.Set("From", m.from)
	}

	if m.messagingServiceSID != "" {
		v.Set("MessagingServiceSid", m.messagingServiceSID)
	}

	if m.body != "" {
		v.Set("Body", m.body)
	}

	if m.contentSID != "" {
		v.Set("ContentSid", m.contentSID)
	}

	if len(m.contentVariables) > 0 {
		// Twilio expects the variables as a JSON object in a single
		// form field.
		encoded, err := json.Marshal(m.contentVariables)
		if err != nil {
			return nil, fmt.Errorf("encoding content variables: %w", err)
		}

		v.Set("ContentVariables", string(encoded))
	}

	if m.statusCallback != "" {
		v.Set("StatusCallback", m.statusCallback)
	}

	if m.mediaURL != "" {
		v.Set("MediaUrl", m.mediaURL)
	}

	return v, nil
}
