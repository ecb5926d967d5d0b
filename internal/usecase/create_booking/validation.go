package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
)

var validate = validator.New()

// validateRequest минимальная проверка, как у формы на сайте
// Подробные правила для полей гостя применяются в мастере бронирования
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SuiteID) == "" {
		return fmt.Errorf("%w: suite id is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.GuestName) < domain.MinGuestNameLength {
		return fmt.Errorf("%w: guest name is too short", ErrInvalidInput)
	}

	if err := validate.Var(req.GuestEmail, "required,email"); err != nil {
		return fmt.Errorf("%w: invalid guest email", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	if req.TotalAmount < 0 {
		return fmt.Errorf("%w: negative total amount", ErrInvalidInput)
	}

	return nil
}
