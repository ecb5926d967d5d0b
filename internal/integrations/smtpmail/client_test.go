package smtpmail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func TestClient_Send(t *testing.T) {
	d := &fakeDialer{}
	c := NewClientWithDialer(d, "bookings@dayseven.com", nopLogger{})

	err := c.Send(context.Background(), domain.Email{
		To:      []string{"guest@example.com"},
		Subject: "Booking Request Received: Day Seven - nomad",
		HTML:    "<h1>Request Received</h1>",
	})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"bookings@dayseven.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"guest@example.com"}, m.GetHeader("To"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Request Received")
}

func TestClient_SendErrors(t *testing.T) {
	c := NewClientWithDialer(&fakeDialer{err: errors.New("connection refused")}, "a@b.c", nopLogger{})

	err := c.Send(context.Background(), domain.Email{To: []string{"guest@example.com"}})
	assert.ErrorIs(t, err, ErrSendFailed)

	err = c.Send(context.Background(), domain.Email{})
	assert.ErrorIs(t, err, ErrNoRecipients)
}
