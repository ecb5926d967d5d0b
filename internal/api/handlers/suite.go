package handlers

import (
	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	"github.com/m04kA/DaySeven-BookingService/internal/pricing"
)

// SuiteResponse номер каталога в HTTP ответах
type SuiteResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Tagline              string   `json:"tagline"`
	Image                string   `json:"image"`
	Highlights           []string `json:"highlights"`
	WeeklyRate           float64  `json:"weeklyRate"`
	MonthlyRate          float64  `json:"monthlyRate"`
	WeeklyRateFormatted  string   `json:"weeklyRateFormatted"`
	MonthlyRateFormatted string   `json:"monthlyRateFormatted"`
	DailyRate            float64  `json:"dailyRate"`
	DailyRateFormatted   string   `json:"dailyRateFormatted"`
	Available            bool     `json:"available"`
	ColorTemp            string   `json:"colorTemp"`
	LastBooked           string   `json:"lastBooked,omitempty"`
	IsHourly             bool     `json:"isHourly"`
}

// FromDomainSuite конвертирует номер каталога в DTO
func FromDomainSuite(s domain.Suite) SuiteResponse {
	daily := pricing.CalculateDailyRate(s)
	highlights := s.Highlights
	if highlights == nil {
		highlights = []string{}
	}

	return SuiteResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		Tagline:              s.Tagline,
		Image:                s.Image,
		Highlights:           highlights,
		WeeklyRate:           s.WeeklyRate,
		MonthlyRate:          s.MonthlyRate,
		WeeklyRateFormatted:  pricing.FormatCurrency(s.WeeklyRate),
		MonthlyRateFormatted: pricing.FormatCurrency(s.MonthlyRate),
		DailyRate:            daily,
		DailyRateFormatted:   pricing.FormatCurrency(daily),
		Available:            s.Available,
		ColorTemp:            string(s.ColorTemp),
		LastBooked:           s.LastBooked,
		IsHourly:             s.IsHourly,
	}
}
