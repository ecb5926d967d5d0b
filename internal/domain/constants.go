package domain

// Pricing constants (KSh)
const (
	HourlyRateOneHour    = 1000
	HourlyRateTwoHours   = 1800
	HourlyRateThreeHours = 4800
	DefaultHourlyRate    = 1500 // 4+ hours

	WeeklyDiscount  = 0.10
	MonthlyDiscount = 0.15

	WeeklyTierNights  = 7
	MonthlyTierNights = 30

	CurrencyCode = "KSh"
)

// Booking validation constants
const (
	MinGuestNameLength = 2
	MaxGuestNameLength = 100
	MaxEmailLength     = 254
	DefaultHours       = 1
	MaxHours           = 12
)

// Time format constants
const (
	DateFormat = "2006-01-02"
)

// BlockingStatuses statuses whose dates are unavailable on the calendar
var BlockingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusPending,
}
