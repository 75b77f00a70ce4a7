package log

import "log"

type panicLogger struct{}

// Panic panics on every Log. Use it as the ErrorHandler when write failures must not pass silently.
var Panic ErrorHandlingLogger = &panicLogger{}

func (n *panicLogger) Log(keyvals ...interface{}) {
	log.Panic(keyvals...)
}

func (n *panicLogger) ErrorLogger(error) Logger {
	return n
}
