package resend

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("resend client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Resend
	ErrInvalidResponse = errors.New("resend client: invalid response")

	// ErrRejected возвращается, когда Resend отклонил письмо (ошибка валидации, ключ, лимиты)
	ErrRejected = errors.New("resend client: email rejected")
)
