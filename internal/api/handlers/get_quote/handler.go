package get_quote

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
	getQuote "github.com/m04kA/DaySeven-BookingService/internal/usecase/get_quote"
)

const (
	msgInvalidParams = "invalid query parameters: from/to expect YYYY-MM-DD, hours expects an integer"
	msgInvalidQuote  = "invalid quote request"
	msgNotFound      = "suite not found"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/suites/{suiteId}/quote
// Query params: from, to (YYYY-MM-DD, nightly suites), hours (hourly suites)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	suiteID := mux.Vars(r)["suiteId"]
	q := r.URL.Query()

	req, err := ToUseCaseRequest(suiteID, q.Get("from"), q.Get("to"), q.Get("hours"))
	if err != nil {
		h.logger.Warn("GET /suites/{id}/quote - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(req)
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrSuiteNotFound):
			h.logger.Warn("GET /suites/{id}/quote - Suite not found: suite_id=%s", suiteID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("GET /suites/{id}/quote - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuote)

		default:
			h.logger.Error("GET /suites/{id}/quote - Failed to calculate quote: suite_id=%s, error=%v", suiteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
