package get_suite

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
	"github.com/m04kA/DaySeven-BookingService/internal/catalog"
)

const msgNotFound = "suite not found"

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

// Handle GET /api/v1/suites/{suiteId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	suiteID := mux.Vars(r)["suiteId"]

	suite, err := h.catalog.Get(suiteID)
	if err != nil {
		if errors.Is(err, catalog.ErrSuiteNotFound) {
			h.logger.Warn("GET /suites/{id} - Suite not found: suite_id=%s", suiteID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /suites/{id} - Failed to get suite: suite_id=%s, error=%v", suiteID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainSuite(suite))
}
