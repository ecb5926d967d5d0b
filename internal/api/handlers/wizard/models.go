package wizard

import (
	"time"

	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	"github.com/m04kA/DaySeven-BookingService/internal/pricing"
	bookingWizard "github.com/m04kA/DaySeven-BookingService/internal/wizard"
)

// Request модели

type SelectSuiteRequest struct {
	SuiteID string `json:"suiteId"`
}

type DatesRequest struct {
	From string `json:"from"` // YYYY-MM-DD или RFC3339, пусто = не выбрано
	To   string `json:"to"`
}

type HoursRequest struct {
	Hours int `json:"hours"`
}

type GuestFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ValidateFieldRequest без value проверяется текущее значение поля
type ValidateFieldRequest struct {
	Field string  `json:"field"`
	Value *string `json:"value,omitempty"`
}

type RulesRequest struct {
	Agreed bool `json:"agreed"`
}

type StepRequest struct {
	Step string `json:"step"`
}

// Response модели

type StateResponse struct {
	Step                string                  `json:"step"`
	SuiteID             *string                 `json:"suiteId"`
	Suite               *handlers.SuiteResponse `json:"suite,omitempty"`
	Dates               DatesResponse           `json:"dates"`
	Hours               int                     `json:"hours"`
	Guest               GuestResponse           `json:"guest"`
	Errors              map[string]string       `json:"errors"`
	IsDatesSelected     bool                    `json:"isDatesSelected"`
	IsGuestInfoComplete bool                    `json:"isGuestInfoComplete"`
	Stay                *StayResponse           `json:"stay,omitempty"`
}

type DatesResponse struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

type GuestResponse struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	HasIDDocument bool   `json:"hasIdDocument"`
	AgreedToRules bool   `json:"agreedToRules"`
}

type StayResponse struct {
	Nights        int     `json:"nights"`
	Hours         *int    `json:"hours,omitempty"`
	Rate          float64 `json:"rate"`
	RateFormatted string  `json:"rateFormatted"`
	Discount      float64 `json:"discount"`
}

type SubmitResponse struct {
	Success   bool           `json:"success"`
	BookingID string         `json:"bookingId,omitempty"`
	Message   string         `json:"message,omitempty"`
	Error     string         `json:"error,omitempty"`
	State     *StateResponse `json:"state"`
}

// FromState конвертирует состояние мастера в HTTP ответ
// suite передается, если выбранный номер найден в каталоге
func FromState(s *bookingWizard.State, suite *domain.Suite) *StateResponse {
	errs := s.Errors
	if errs == nil {
		errs = map[string]string{}
	}

	resp := &StateResponse{
		Step:    s.Step.String(),
		SuiteID: s.SuiteID,
		Dates: DatesResponse{
			From: s.Dates.From,
			To:   s.Dates.To,
		},
		Hours: s.Hours,
		Guest: GuestResponse{
			Name:          s.Guest.Name,
			Email:         s.Guest.Email,
			Phone:         s.Guest.Phone,
			HasIDDocument: s.Guest.HasIDDocument(),
			AgreedToRules: s.Guest.AgreedToRules,
		},
		Errors:              errs,
		IsDatesSelected:     s.IsDatesSelected(),
		IsGuestInfoComplete: s.IsGuestInfoComplete(),
	}

	if suite != nil {
		sr := handlers.FromDomainSuite(*suite)
		resp.Suite = &sr

		stay := pricing.CalculateStay(*suite, s.Dates, s.Hours)
		resp.Stay = &StayResponse{
			Nights:        stay.Nights,
			Hours:         stay.Hours,
			Rate:          stay.Rate,
			RateFormatted: pricing.FormatCurrency(stay.Rate),
			Discount:      stay.Discount,
		}
	}

	return resp
}
