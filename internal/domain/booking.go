package domain

import "time"

// BookingStatus represents the status of a persisted booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingMetadata is stored alongside the booking row as a JSON blob
type BookingMetadata struct {
	VerifiedID      bool    `json:"verified_id"`
	MpesaCheckoutID *string `json:"mpesa_checkout_id"`
}

// Booking represents a booking row owned by the external datastore.
// The service only appends and reads; status transitions happen elsewhere.
type Booking struct {
	ID          string
	SuiteID     string
	GuestName   string
	GuestEmail  string
	GuestPhone  string
	StartDate   time.Time
	EndDate     time.Time
	TotalAmount float64
	Status      BookingStatus
	Metadata    BookingMetadata

	CreatedAt time.Time
}

// HasPaymentReference returns true if a mobile-money push was initiated for the booking
func (b *Booking) HasPaymentReference() bool {
	return b.Metadata.MpesaCheckoutID != nil && *b.Metadata.MpesaCheckoutID != ""
}

// IsBlocking returns true if the booking occupies its dates on the calendar
func (b *Booking) IsBlocking() bool {
	for _, s := range BlockingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// BookedRange is a date range already taken by a pending or confirmed booking
type BookedRange struct {
	From time.Time
	To   time.Time
}
