package log

type nop struct{}

// Discard is the default diagnostics logger. It writes nothing and reports itself disabled.
var Discard ErrorHandlingLogger = nop{}

func (n nop) Log(keyvals ...interface{}) {
}

func (n nop) ErrorLogger(error) Logger {
	return n
}

func (n nop) Disabled() bool {
	return true
}
