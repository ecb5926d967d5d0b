package get_quote

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SuiteID) == "" {
		return fmt.Errorf("%w: suiteId is required", ErrInvalidInput)
	}

	if req.Hours < 0 {
		return fmt.Errorf("%w: hours must not be negative", ErrInvalidInput)
	}

	// Половина диапазона допустима: стоимость будет нулевой, как в календаре
	if req.From != nil && req.To != nil && !req.To.After(*req.From) {
		return fmt.Errorf("%w: check-out must be after check-in", ErrInvalidInput)
	}

	return nil
}
