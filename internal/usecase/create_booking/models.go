package create_booking

import "time"

// Request модель запроса на оформление бронирования
type Request struct {
	SuiteID     string    // ID номера
	StartDate   time.Time // Начало проживания
	EndDate     time.Time // Окончание проживания
	GuestName   string    // Имя гостя (не короче 2 символов)
	GuestEmail  string    // Email гостя
	GuestPhone  string    // Телефон гостя (+254...)
	VerifiedID  bool      // Гость загрузил документ
	TotalAmount float64   // Сумма к оплате, 0 означает без оплаты
}

// Response результат оформления
// Success=false всегда сопровождается Error, а Err содержит причину для транспорта
type Response struct {
	Success   bool
	BookingID string
	Message   string
	Error     string

	Err error
}

func failure(err error, msg string) *Response {
	return &Response{Success: false, Error: msg, Err: err}
}
