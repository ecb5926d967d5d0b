package create_booking

import (
	"net/http"

	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/DaySeven-BookingService/internal/usecase/create_booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Ответ всегда имеет форму {success, bookingId?, message?, error?}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, &BookingResultResponse{Error: createBooking.MsgInvalidInput})
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, &BookingResultResponse{Error: createBooking.MsgInvalidInput})
		return
	}

	result := h.useCase.Execute(r.Context(), useCaseReq)
	if !result.Success {
		h.logger.Warn("POST /bookings - Booking failed: suite_id=%s, error=%v", req.SuiteID, result.Err)
	} else {
		h.logger.Info("POST /bookings - Booking accepted: booking_id=%s, suite_id=%s", result.BookingID, req.SuiteID)
	}

	handlers.RespondJSON(w, StatusCode(result), FromUseCaseResponse(result))
}
