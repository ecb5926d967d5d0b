package smtpmail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dialer отправка собранных сообщений, реализуется *gomail.Dialer
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Client отправка писем через SMTP, используется когда Resend не настроен
type Client struct {
	dialer Dialer
	from   string
	log    Logger
}

// NewClient создает клиента поверх gomail.Dialer
func NewClient(host string, port int, username, password, from string, log Logger) *Client {
	return NewClientWithDialer(gomail.NewDialer(host, port, username, password), from, log)
}

// NewClientWithDialer создает клиента с произвольным dialer
func NewClientWithDialer(dialer Dialer, from string, log Logger) *Client {
	return &Client{
		dialer: dialer,
		from:   from,
		log:    log,
	}
}

// Send отправляет одно HTML письмо
// Отправитель письма имеет приоритет, иначе используется адрес клиента
func (c *Client) Send(ctx context.Context, email domain.Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	from := email.From
	if from == "" {
		from = c.from
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTML)

	if err := c.dialer.DialAndSend(m); err != nil {
		c.log.Error("SMTP: could not send email subject=%q: %v", email.Subject, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.log.Info("SMTP: email sent to=%v, subject=%q", email.To, email.Subject)
	return nil
}
