package get_blocked_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
	"github.com/m04kA/DaySeven-BookingService/internal/catalog"
)

const msgNotFound = "suite not found"

type Handler struct {
	service BookingService
	catalog SuiteCatalog
	logger  Logger
}

func NewHandler(service BookingService, catalog SuiteCatalog, logger Logger) *Handler {
	return &Handler{
		service: service,
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/suites/{suiteId}/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	suiteID := mux.Vars(r)["suiteId"]

	if _, err := h.catalog.Get(suiteID); err != nil {
		if errors.Is(err, catalog.ErrSuiteNotFound) {
			h.logger.Warn("GET /suites/{id}/blocked-dates - Suite not found: suite_id=%s", suiteID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		handlers.RespondInternalError(w)
		return
	}

	resp, err := h.service.GetBlockedDates(r.Context(), suiteID)
	if err != nil {
		h.logger.Error("GET /suites/{id}/blocked-dates - Failed: suite_id=%s, error=%v", suiteID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
