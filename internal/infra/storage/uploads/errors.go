package uploads

import "errors"

var (
	// ErrTooLarge возвращается, когда файл превышает допустимый размер
	ErrTooLarge = errors.New("uploads.storage: file is too large")

	// ErrUnsupportedType возвращается для файлов, не являющихся изображением или PDF
	ErrUnsupportedType = errors.New("uploads.storage: unsupported file type")

	// ErrWrite возвращается при ошибке записи на диск
	ErrWrite = errors.New("uploads.storage: failed to write file")
)
