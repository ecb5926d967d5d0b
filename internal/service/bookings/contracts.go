package bookings

import (
	"context"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований (только чтение)
type BookingRepository interface {
	GetBlockedRanges(ctx context.Context, suiteID string) ([]domain.BookedRange, error)
	List(ctx context.Context) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
