package email_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"tour-booking-api/pkg/email"
)

func TestBuildMessage(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	got := email.BuildMessage("Natours <hello@natours.io>", email.Message{
		To:      "jo@example.com",
		Subject: "Your password reset token\r\nBcc: victim@example.com",
		Text:    "line one\nline two",
	}, now)

	for _, want := range []string{
		"From: Natours <hello@natours.io>\r\n",
		"To: jo@example.com\r\n",
		"Content-Type: text/plain; charset=UTF-8\r\n",
		"\r\n\r\nline one\r\nline two",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("message missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\r\nBcc:") {
		t.Errorf("subject must not inject headers:\n%s", got)
	}
}

func TestAddress(t *testing.T) {
	tests := map[string]string{
		"Natours <hello@natours.io>": "hello@natours.io",
		"jo@example.com":             "jo@example.com",
		" broken <":                  "broken <",
	}
	for in, want := range tests {
		if got := email.Address(in); got != want {
			t.Errorf("Address(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSendRequiresRecipient(t *testing.T) {
	s := email.NewSMTP(email.Config{Host: "localhost", Port: 2525})
	if err := s.Send(context.Background(), email.Message{Subject: "x"}); err != email.ErrNoRecipient {
		t.Errorf("expected ErrNoRecipient, got %v", err)
	}
}
