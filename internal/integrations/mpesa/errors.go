package mpesa

import "errors"

var (
	// ErrNotConfigured возвращается, когда не заданы ключи приложения Daraja
	ErrNotConfigured = errors.New("mpesa client: consumer key or secret not configured")

	// ErrAuthFailed возвращается, когда не удалось получить access token
	ErrAuthFailed = errors.New("mpesa client: failed to authenticate")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mpesa client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от M-Pesa
	ErrInvalidResponse = errors.New("mpesa client: invalid response")

	// ErrPushRejected возвращается, когда M-Pesa не приняла STK push
	ErrPushRejected = errors.New("mpesa client: stk push rejected")
)
