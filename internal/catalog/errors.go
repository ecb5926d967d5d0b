package catalog

import "errors"

var (
	// ErrSuiteNotFound возвращается, когда номер с указанным id отсутствует в каталоге
	ErrSuiteNotFound = errors.New("catalog: suite not found")

	// ErrInvalidSuite возвращается при некорректном описании номера
	ErrInvalidSuite = errors.New("catalog: invalid suite")

	// ErrDuplicateSuite возвращается при повторяющемся id
	ErrDuplicateSuite = errors.New("catalog: duplicate suite id")

	// ErrNonMonotonicRates возвращается, когда более длинное проживание стоит дешевле короткого
	ErrNonMonotonicRates = errors.New("catalog: longer stays must not cost less than shorter ones")

	// ErrLoadFile возвращается при ошибке чтения файла каталога
	ErrLoadFile = errors.New("catalog: failed to load catalog file")
)
