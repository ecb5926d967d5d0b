package models

import (
	"time"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
)

// DateRangeResponse занятый период
type DateRangeResponse struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// BlockedDatesResponse занятые периоды номера
type BlockedDatesResponse struct {
	SuiteID string              `json:"suiteId"`
	Ranges  []DateRangeResponse `json:"ranges"`
}

// BookingMetadataResponse служебные данные бронирования
type BookingMetadataResponse struct {
	VerifiedID      bool    `json:"verifiedId"`
	MpesaCheckoutID *string `json:"mpesaCheckoutId,omitempty"`
}

// BookingResponse бронирование для панели администратора
type BookingResponse struct {
	ID                   string                  `json:"id"`
	SuiteID              string                  `json:"suiteId"`
	GuestName            string                  `json:"guestName"`
	GuestEmail           string                  `json:"guestEmail"`
	GuestPhone           string                  `json:"guestPhone"`
	StartDate            time.Time               `json:"startDate"`
	EndDate              time.Time               `json:"endDate"`
	TotalAmount          float64                 `json:"totalAmount"`
	TotalAmountFormatted string                  `json:"totalAmountFormatted"`
	Status               string                  `json:"status"`
	Metadata             BookingMetadataResponse `json:"metadata"`
	CreatedAt            time.Time               `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DashboardResponse сводка для панели администратора
type DashboardResponse struct {
	TotalBookings         int               `json:"totalBookings"`
	TotalRevenue          float64           `json:"totalRevenue"`
	TotalRevenueFormatted string            `json:"totalRevenueFormatted"`
	VerifiedIDs           int               `json:"verifiedIds"`
	PaymentsInitiated     int               `json:"paymentsInitiated"`
	PersistenceConfigured bool              `json:"persistenceConfigured"`
	Bookings              []BookingResponse `json:"bookings"`
}

// ListBookingsRequest фильтр списка бронирований
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, formatted string) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                   b.ID,
		SuiteID:              b.SuiteID,
		GuestName:            b.GuestName,
		GuestEmail:           b.GuestEmail,
		GuestPhone:           b.GuestPhone,
		StartDate:            b.StartDate,
		EndDate:              b.EndDate,
		TotalAmount:          b.TotalAmount,
		TotalAmountFormatted: formatted,
		Status:               string(b.Status),
		Metadata: BookingMetadataResponse{
			VerifiedID:      b.Metadata.VerifiedID,
			MpesaCheckoutID: b.Metadata.MpesaCheckoutID,
		},
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainRanges конвертирует занятые периоды в DTO
func FromDomainRanges(suiteID string, ranges []domain.BookedRange) *BlockedDatesResponse {
	resp := &BlockedDatesResponse{
		SuiteID: suiteID,
		Ranges:  make([]DateRangeResponse, 0, len(ranges)),
	}
	for _, r := range ranges {
		resp.Ranges = append(resp.Ranges, DateRangeResponse{From: r.From, To: r.To})
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, bool) {
	s := domain.BookingStatus(status)
	switch s {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return s, true
	}
	return "", false
}
