package get_suite

import "github.com/m04kA/DaySeven-BookingService/internal/domain"

type SuiteCatalog interface {
	Get(id string) (domain.Suite, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
