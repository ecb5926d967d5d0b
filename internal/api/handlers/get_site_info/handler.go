package get_site_info

import (
	"net/http"

	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
)

type Handler struct {
	info   SiteInfoResponse
	logger Logger
}

func NewHandler(info SiteInfoResponse, logger Logger) *Handler {
	return &Handler{
		info:   info,
		logger: logger,
	}
}

// Handle GET /api/v1/site
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.info)
}
