package get_quote

import (
	"errors"
	"fmt"

	"github.com/m04kA/DaySeven-BookingService/internal/catalog"
	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	"github.com/m04kA/DaySeven-BookingService/internal/pricing"
)

// UseCase расчет стоимости проживания в номере
type UseCase struct {
	catalog SuiteCatalog
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog SuiteCatalog, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute считает стоимость для выбранных дат или часов
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	suite, err := uc.catalog.Get(req.SuiteID)
	if err != nil {
		if errors.Is(err, catalog.ErrSuiteNotFound) {
			uc.logger.Warn("GetQuote: suite=%s not found", req.SuiteID)
			return nil, ErrSuiteNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hours := req.Hours
	if hours == 0 {
		hours = domain.DefaultHours
	}

	stay := pricing.CalculateStay(suite, domain.DateRange{From: req.From, To: req.To}, hours)
	daily := pricing.CalculateDailyRate(suite)

	uc.logger.Info("GetQuote: suite=%s, nights=%d, hours=%d, rate=%.2f", suite.ID, stay.Nights, hours, stay.Rate)

	return &Response{
		SuiteID:            suite.ID,
		SuiteName:          suite.Name,
		IsHourly:           suite.IsHourly,
		Nights:             stay.Nights,
		Hours:              stay.Hours,
		Rate:               stay.Rate,
		Discount:           stay.Discount,
		RateFormatted:      pricing.FormatCurrency(stay.Rate),
		DailyRate:          daily,
		DailyRateFormatted: pricing.FormatCurrency(daily),
	}, nil
}
