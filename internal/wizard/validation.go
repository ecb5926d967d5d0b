package wizard

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
	"github.com/m04kA/DaySeven-BookingService/pkg/phone"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	mustRegister(v, "guestname", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "guestemail", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "guestphone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(phone.Format(fl.Field().String()))
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("wizard: register validation %s: %v", tag, err))
	}
}

// rule одно правило проверки поля: тег validator и сообщение для гостя
type rule struct {
	tag     string
	message string
	trimmed bool // проверять значение без пробелов по краям
}

// rules проверяются по порядку, возвращается первое нарушенное
var rules = map[Field][]rule{
	FieldName: {
		{tag: "required", message: "Name is required", trimmed: true},
		{tag: fmt.Sprintf("min=%d", domain.MinGuestNameLength), message: "Name must be at least 2 characters"},
		{tag: fmt.Sprintf("max=%d", domain.MaxGuestNameLength), message: "Name must not exceed 100 characters"},
		{tag: "guestname", message: "Name can only contain letters, spaces, hyphens, and apostrophes"},
	},
	FieldEmail: {
		{tag: "required", message: "Email is required", trimmed: true},
		{tag: fmt.Sprintf("max=%d", domain.MaxEmailLength), message: "Email must not exceed 254 characters"},
		{tag: "guestemail", message: "Please enter a valid email address"},
	},
	FieldPhone: {
		{tag: "required", message: "Phone number is required", trimmed: true},
		{tag: "guestphone", message: "Please enter a valid phone number"},
	},
}

// ValidateValue проверяет значение одного поля
// Возвращает сообщение об ошибке или пустую строку, если значение корректно
func ValidateValue(field Field, value string) string {
	for _, r := range rules[field] {
		v := value
		if r.trimmed {
			v = strings.TrimSpace(v)
		}
		if err := validate.Var(v, r.tag); err != nil {
			return r.message
		}
	}
	return ""
}

// ValidateGuest проверяет все текстовые поля гостя
// Возвращает ошибки по имени поля; пустая карта означает, что данные корректны
func ValidateGuest(guest domain.GuestInfo) map[string]string {
	errs := make(map[string]string)
	for _, f := range GuestFields {
		if msg := ValidateValue(f, guestValue(guest, f)); msg != "" {
			errs[string(f)] = msg
		}
	}
	return errs
}
