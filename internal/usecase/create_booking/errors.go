package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPersistence возвращается, когда не удалось сохранить бронирование
	ErrPersistence = errors.New("create_booking: failed to persist booking")

	// ErrInternal возвращается при любых прочих сбоях оформления (письма, паника)
	ErrInternal = errors.New("create_booking: internal error")
)

// Сообщения для гостя, без внутренних подробностей
const (
	MsgInvalidInput    = "Invalid booking data"
	MsgPersistence     = "Failed to save booking. Please try again."
	MsgUnexpected      = "An unexpected error occurred."
	MsgPaymentStarted  = "Payment initiated. Please check your phone."
	MsgBookingReceived = "Booking received."
)

// Результаты оформления для метрик
const (
	ResultSuccess     = "success"
	ResultInvalid     = "invalid"
	ResultPersistence = "persistence_error"
	ResultError       = "error"
)

const (
	integrationPayment = "mpesa"
	integrationEmail   = "email"
)
