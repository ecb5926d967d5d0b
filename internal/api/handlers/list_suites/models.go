package list_suites

import (
	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
	"github.com/m04kA/DaySeven-BookingService/internal/domain"
)

// SuiteListResponse HTTP response model
type SuiteListResponse struct {
	Suites []handlers.SuiteResponse `json:"suites"`
}

func FromDomainSuites(suites []domain.Suite) *SuiteListResponse {
	resp := &SuiteListResponse{Suites: make([]handlers.SuiteResponse, 0, len(suites))}
	for _, s := range suites {
		resp.Suites = append(resp.Suites, handlers.FromDomainSuite(s))
	}
	return resp
}
