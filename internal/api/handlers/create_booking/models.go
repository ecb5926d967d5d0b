package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/DaySeven-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SuiteID     string   `json:"suiteId"`
	StartDate   string   `json:"startDate"` // ISO 8601
	EndDate     string   `json:"endDate"`   // ISO 8601
	GuestName   string   `json:"guestName"`
	GuestEmail  string   `json:"guestEmail"`
	GuestPhone  string   `json:"guestPhone"`
	VerifiedID  *bool    `json:"verifiedId,omitempty"`
	TotalAmount *float64 `json:"totalAmount,omitempty"`
}

// BookingResultResponse результат оформления
type BookingResultResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := handlers.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		SuiteID:    r.SuiteID,
		StartDate:  start,
		EndDate:    end,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		GuestPhone: r.GuestPhone,
	}
	if r.VerifiedID != nil {
		req.VerifiedID = *r.VerifiedID
	}
	if r.TotalAmount != nil {
		req.TotalAmount = *r.TotalAmount
	}

	return req, nil
}

// FromUseCaseResponse конвертирует результат use case в HTTP ответ
func FromUseCaseResponse(resp *createBooking.Response) *BookingResultResponse {
	return &BookingResultResponse{
		Success:   resp.Success,
		BookingID: resp.BookingID,
		Message:   resp.Message,
		Error:     resp.Error,
	}
}

// StatusCode HTTP статус для результата оформления
func StatusCode(resp *createBooking.Response) int {
	switch {
	case resp.Success:
		return http.StatusCreated
	case errors.Is(resp.Err, createBooking.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
