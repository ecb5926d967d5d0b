package wizard

import (
	"context"
	"io"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	createBooking "github.com/m04kA/DaySeven-BookingService/internal/usecase/create_booking"
)

// SessionStore хранилище сессии посетителя, реализуется *scs.SessionManager
type SessionStore interface {
	Get(ctx context.Context, key string) interface{}
	Put(ctx context.Context, key string, val interface{})
}

type SuiteCatalog interface {
	Get(id string) (domain.Suite, error)
}

type DocumentStorage interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	MaxSize() int64
}

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) *createBooking.Response
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
