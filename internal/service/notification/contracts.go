package notification

import (
	"context"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
)

// EmailSender интерфейс почтового провайдера (Resend или SMTP)
type EmailSender interface {
	Send(ctx context.Context, email domain.Email) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
