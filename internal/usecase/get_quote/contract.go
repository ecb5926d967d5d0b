package get_quote

import "github.com/m04kA/DaySeven-BookingService/internal/domain"

// SuiteCatalog интерфейс каталога номеров
type SuiteCatalog interface {
	Get(id string) (domain.Suite, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
