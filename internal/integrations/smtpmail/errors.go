package smtpmail

import "errors"

var (
	// ErrSendFailed возвращается, когда SMTP сервер не принял письмо
	ErrSendFailed = errors.New("smtp client: failed to send email")

	// ErrNoRecipients возвращается для письма без получателей
	ErrNoRecipients = errors.New("smtp client: no recipients")
)
