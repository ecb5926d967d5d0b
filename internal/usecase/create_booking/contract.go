package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	"github.com/m04kA/DaySeven-BookingService/internal/integrations/mpesa"
	"github.com/m04kA/DaySeven-BookingService/internal/service/notification"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// PaymentClient интерфейс платежного провайдера (STK push)
type PaymentClient interface {
	InitiateSTKPush(ctx context.Context, req mpesa.STKPushRequest) (*mpesa.STKPushResponse, error)
}

// Notifier интерфейс отправки писем о новом бронировании
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, notice notification.BookingNotice) error
}

// MetricsRecorder интерфейс для записи бизнес-метрик
type MetricsRecorder interface {
	RecordBooking(result string)
	RecordExternalCall(integration, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopMetrics struct{}

func (nopMetrics) RecordBooking(string)              {}
func (nopMetrics) RecordExternalCall(string, string) {}
