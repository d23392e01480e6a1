package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFallsBackWithoutCredentials(t *testing.T) {
	m := New("smtp.gmail.com", 587, "", "")

	_, ok := m.(LogMailer)
	assert.True(t, ok, "missing credentials should yield the log fallback")
}

func TestNewUsesSMTPWhenConfigured(t *testing.T) {
	m := New("smtp.gmail.com", 587, "user@example.com", "app-password")

	_, ok := m.(*SMTPMailer)
	assert.True(t, ok)
}

func TestLogMailerAlwaysSucceeds(t *testing.T) {
	err := LogMailer{}.Send(context.Background(), Message{
		To:      "asha@example.com",
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
	})
	require.NoError(t, err)
}
