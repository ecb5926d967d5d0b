package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
	"github.com/m04kA/DaySeven-BookingService/internal/service/bookings"
	"github.com/m04kA/DaySeven-BookingService/internal/service/bookings/models"
)

const msgInvalidStatus = "invalid status, expected one of: pending, confirmed, cancelled"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Без фильтра возвращает сводку (выручка, проверенные документы, платежи) и список
// Query params: status (optional) - только список бронирований с этим статусом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		handlers.RespondJSON(w, http.StatusOK, h.service.GetDashboard(r.Context()))
		return
	}

	list, err := h.service.ListBookings(r.Context(), &models.ListBookingsRequest{Status: &status})
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidStatus) {
			h.logger.Warn("GET /admin/bookings - Invalid status: %q", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
