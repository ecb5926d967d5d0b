package get_blocked_dates

import (
	"context"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	"github.com/m04kA/DaySeven-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetBlockedDates(ctx context.Context, suiteID string) (*models.BlockedDatesResponse, error)
}

type SuiteCatalog interface {
	Get(id string) (domain.Suite, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
