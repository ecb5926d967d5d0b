package get_quote

import "errors"

var (
	// ErrSuiteNotFound возвращается, когда номер не найден в каталоге
	ErrSuiteNotFound = errors.New("get_quote: suite not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_quote: invalid input data")
)
