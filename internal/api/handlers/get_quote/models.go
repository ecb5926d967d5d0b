package get_quote

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
	getQuote "github.com/m04kA/DaySeven-BookingService/internal/usecase/get_quote"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	SuiteID            string  `json:"suiteId"`
	SuiteName          string  `json:"suiteName"`
	IsHourly           bool    `json:"isHourly"`
	Nights             int     `json:"nights"`
	Hours              *int    `json:"hours,omitempty"`
	Rate               float64 `json:"rate"`
	RateFormatted      string  `json:"rateFormatted"`
	Discount           float64 `json:"discount"`
	DailyRate          float64 `json:"dailyRate"`
	DailyRateFormatted string  `json:"dailyRateFormatted"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(suiteID, from, to, hours string) (*getQuote.Request, error) {
	fromDate, err := handlers.ParseOptionalDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := handlers.ParseOptionalDate(to)
	if err != nil {
		return nil, err
	}

	var h int
	if strings.TrimSpace(hours) != "" {
		h, err = strconv.Atoi(strings.TrimSpace(hours))
		if err != nil {
			return nil, fmt.Errorf("invalid hours %q", hours)
		}
	}

	return &getQuote.Request{
		SuiteID: suiteID,
		From:    fromDate,
		To:      toDate,
		Hours:   h,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		SuiteID:            resp.SuiteID,
		SuiteName:          resp.SuiteName,
		IsHourly:           resp.IsHourly,
		Nights:             resp.Nights,
		Hours:              resp.Hours,
		Rate:               resp.Rate,
		RateFormatted:      resp.RateFormatted,
		Discount:           resp.Discount,
		DailyRate:          resp.DailyRate,
		DailyRateFormatted: resp.DailyRateFormatted,
	}
}
