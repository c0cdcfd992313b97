package fullsend

import (
	"errors"
	"testing"
)

func TestNewMessage(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(
		To("+15558675309"),
		From("+15551234567"),
		Body("howdy from fullsend!"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.To() != "+15558675309" {
		t.Errorf("expected to=+15558675309, got %s", msg.To())
	}

	if msg.From() != "+15551234567" {
		t.Errorf("expected from=+15551234567, got %s", msg.From())
	}

	if msg.Body() != "howdy from fullsend!" {
		t.Errorf("expected body='howdy from fullsend!', got %s", msg.Body())
	}
}

func TestNewMessage_RequiresTo(t *testing.T) {
	t.Parallel()

	_, err := NewMessage(From("+15551234567"), Body("hi"))

	if !errors.Is(err, ErrNoToSet) {
		t.Errorf("expected ErrNoToSet, got: %v", err)
	}
}

func TestNewMessage_RequiresSender(t *testing.T) {
	t.Parallel()

	_, err := NewMessage(To("+15558675309"), Body("hi"))

	if !errors.Is(err, ErrNoSenderSet) {
		t.Errorf("expected ErrNoSenderSet, got: %v", err)
	}
}

func TestNewMessage_RequiresContent(t *testing.T) {
	t.Parallel()

	_, err := NewMessage(To("+15558675309"), From("+15551234567"))

	if !errors.Is(err, ErrNoContentSet) {
		t.Errorf("expected ErrNoContentSet, got: %v", err)
	}
}

func TestNewMessage_MessagingServiceAsSender(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(
		To("+15558675309"),
		MessagingServiceSID("MG123"),
		Body("hi"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.From() != "" {
		t.Errorf("expected empty from, got %s", msg.From())
	}
}

func TestNewMessage_ContentTemplateAsContent(t *testing.T) {
	t.Parallel()

	_, err := NewMessage(
		To("+15558675309"),
		From("+15551234567"),
		ContentSID("HX123"),
	)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMessageValues(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(
		To("+15558675309"),
		From("+15551234567"),
		Body("hi"),
		StatusCallback("https://example.com/status"),
		MediaURL("https://example.com/cat.png"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := msg.values()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"To":             "+15558675309",
		"From":           "+15551234567",
		"Body":           "hi",
		"StatusCallback": "https://example.com/status",
		"MediaUrl":       "https://example.com/cat.png",
	}

	for field, value := range want {
		if v.Get(field) != value {
			t.Errorf("expected %s=%s, got %s", field, value, v.Get(field))
		}
	}

	if len(v) != len(want) {
		t.Errorf("expected %d form fields, got %d: %v", len(want), len(v), v)
	}
}

func TestMessageValues_OmitsUnsetFields(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(To("+15558675309"), From("+15551234567"), Body("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := msg.values()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, field := range []string{"MessagingServiceSid", "ContentSid", "ContentVariables", "StatusCallback", "MediaUrl"} {
		if v.Has(field) {
			t.Errorf("expected %s to be omitted, got %s", field, v.Get(field))
		}
	}
}

func TestMessageValues_ContentVariablesJSON(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(
		To("+15558675309"),
		From("+15551234567"),
		ContentSID("HX123"),
		ContentVariables(map[string]string{"name": "Taylor"}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := msg.values()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Get("ContentVariables") != `{"name":"Taylor"}` {
		t.Errorf("unexpected ContentVariables encoding: %s", v.Get("ContentVariables"))
	}
}
