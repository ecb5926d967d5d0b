package wizard

import "errors"

var (
	// ErrUnknownField возвращается при обращении к несуществующему полю гостя
	ErrUnknownField = errors.New("wizard: unknown guest field")

	// ErrUnknownStep возвращается при некорректном шаге мастера
	ErrUnknownStep = errors.New("wizard: unknown step")

	// ErrNoSuiteSelected возвращается, когда номер не выбран или не совпадает с переданным
	ErrNoSuiteSelected = errors.New("wizard: no suite selected")
)
