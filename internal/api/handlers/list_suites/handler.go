package list_suites

import (
	"net/http"

	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
	"github.com/m04kA/DaySeven-BookingService/internal/domain"
)

const msgInvalidFilter = "invalid filter, expected one of: available, hourly, nightly"

type Handler struct {
	catalog SuiteCatalog
	logger  Logger
}

func NewHandler(catalog SuiteCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/suites
// Query params: filter (optional: available | hourly | nightly)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")

	var suites []domain.Suite
	switch filter {
	case "":
		suites = h.catalog.All()
	case "available":
		suites = h.catalog.Available()
	case "hourly":
		suites = h.catalog.Hourly()
	case "nightly":
		suites = h.catalog.Nightly()
	default:
		h.logger.Warn("GET /suites - Invalid filter: %q", filter)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSuites(suites))
}
