package notification

import "time"

// DateLayout формат дат в письмах ("Wed Jan 01 2025")
const DateLayout = "Mon Jan 02 2006"

// Settings адреса и подписи писем
type Settings struct {
	From       string // отправитель всех писем
	OwnerEmail string // ящик владельца, куда приходят уведомления
	AppName    string // подпись в теме и тексте письма гостю
}

// BookingNotice данные бронирования для писем владельцу и гостю
type BookingNotice struct {
	BookingID  string
	SuiteID    string
	GuestName  string
	GuestEmail string
	GuestPhone string
	StartDate  time.Time
	EndDate    time.Time
	VerifiedID bool
}

type ownerView struct {
	BookingNotice
	From     string
	To       string
	Verified string
}

type guestView struct {
	BookingNotice
	AppName string
}
