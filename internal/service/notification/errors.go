package notification

import "errors"

var (
	// ErrRender возвращается, когда не удалось собрать письмо по шаблону
	ErrRender = errors.New("notification: failed to render email")

	// ErrSendFailed возвращается, когда провайдер не принял письмо
	ErrSendFailed = errors.New("notification: failed to send email")
)
