package log

import (
	"io"

	kitlog "github.com/go-kit/kit/log"
)

// ErrorLogger is the go-kit logger shape: Log may fail
type ErrorLogger interface {
	Log(keyvals ...interface{}) error
}

// DefaultErrorHandler receives records FromGokit loggers fail to write
var DefaultErrorHandler ErrorHandler = Discard

// ErrorLogLogger turns an ErrorLogger into a Logger, sending failed records to ErrHandler
type ErrorLogLogger struct {
	RootLogger ErrorLogger
	ErrHandler ErrorHandler
}

var _ ErrorHandlingLogger = &ErrorLogLogger{}

func (e *ErrorLogLogger) Log(keyvals ...interface{}) {
	err := e.RootLogger.Log(keyvals...)
	if err == nil || e.ErrHandler == nil {
		return
	}
	e.ErrorLogger(err).Log(keyvals...)
}

func (e *ErrorLogLogger) ErrorLogger(err error) Logger {
	return e.ErrHandler.ErrorLogger(err)
}

// FromGokit adapts a go-kit logger, handing its failures to DefaultErrorHandler
func FromGokit(logger ErrorLogger) *ErrorLogLogger {
	return &ErrorLogLogger{
		RootLogger: logger,
		ErrHandler: DefaultErrorHandler,
	}
}

// NewJSONLogger writes one JSON object per Log call to w
func NewJSONLogger(w io.Writer, errHandler ErrorHandler) Logger {
	if w == io.Discard {
		return Discard
	}
	return &ErrorLogLogger{
		RootLogger: kitlog.NewJSONLogger(w),
		ErrHandler: errHandler,
	}
}
