package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/smtp"
	"testing"

	"github.com/jordan-wright/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailNotifier_Notify(t *testing.T) {
	n := NewEmailNotifier(SMTPConfig{
		Host:     "smtp.test",
		Port:     2525,
		Username: "bot",
		Password: "secret",
		From:     "bot@test",
		To:       []string{"a@test", "b@test"},
	}, nil)

	var sent *email.Email
	var sentAddr string
	var sentAuth smtp.Auth
	n.send = func(e *email.Email, addr string, auth smtp.Auth) error {
		sent, sentAddr, sentAuth = e, addr, auth
		return nil
	}

	err := n.Notify(context.Background(), "2 installment(s) due", "body text")
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, "smtp.test:2525", sentAddr)
	assert.NotNil(t, sentAuth)
	assert.Equal(t, "bot@test", sent.From)
	assert.Equal(t, []string{"a@test", "b@test"}, sent.To)
	assert.Equal(t, "2 installment(s) due", sent.Subject)
	assert.Equal(t, []byte("body text"), sent.Text)
}

func TestEmailNotifier_NoAuthWithoutUsername(t *testing.T) {
	n := NewEmailNotifier(SMTPConfig{Host: "smtp.test", Port: 25, From: "bot@test", To: []string{"a@test"}}, nil)
	var sentAuth smtp.Auth = smtp.PlainAuth("", "x", "y", "z")
	n.send = func(e *email.Email, addr string, auth smtp.Auth) error {
		sentAuth = auth
		return nil
	}

	require.NoError(t, n.Notify(context.Background(), "s", "b"))
	assert.Nil(t, sentAuth)
}

func TestEmailNotifier_SendError(t *testing.T) {
	n := NewEmailNotifier(SMTPConfig{Host: "smtp.test", Port: 25, From: "bot@test", To: []string{"a@test"}}, nil)
	boom := errors.New("connection refused")
	n.send = func(*email.Email, string, smtp.Auth) error { return boom }

	err := n.Notify(context.Background(), "s", "b")
	assert.ErrorIs(t, err, boom)
}

func TestEmailNotifier_NoRecipients(t *testing.T) {
	n := NewEmailNotifier(SMTPConfig{Host: "smtp.test", Port: 25}, nil)
	n.send = func(*email.Email, string, smtp.Auth) error {
		t.Fatal("send must not be called")
		return nil
	}

	assert.Error(t, n.Notify(context.Background(), "s", "b"))
}

func TestLogNotifier_Notify(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, n.Notify(context.Background(), "reminder subject", "line"))
	assert.Contains(t, buf.String(), "reminder subject")
}
