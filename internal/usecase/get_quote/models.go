package get_quote

import "time"

// Request модель запроса на расчет стоимости
type Request struct {
	SuiteID string     // ID номера
	From    *time.Time // Заезд (для посуточных номеров)
	To      *time.Time // Выезд (для посуточных номеров)
	Hours   int        // Длительность для почасовых номеров, 0 означает 1 час
}

// Response расчет стоимости проживания
type Response struct {
	SuiteID   string
	SuiteName string
	IsHourly  bool

	Nights   int
	Hours    *int
	Rate     float64
	Discount float64

	RateFormatted      string
	DailyRate          float64
	DailyRateFormatted string
}
