package list_suites

import "github.com/m04kA/DaySeven-BookingService/internal/domain"

type SuiteCatalog interface {
	All() []domain.Suite
	Available() []domain.Suite
	Hourly() []domain.Suite
	Nightly() []domain.Suite
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
