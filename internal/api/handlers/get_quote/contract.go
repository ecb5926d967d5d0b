package get_quote

import getQuote "github.com/m04kA/DaySeven-BookingService/internal/usecase/get_quote"

type GetQuoteUseCase interface {
	Execute(req *getQuote.Request) (*getQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
