package log

// MultiLogger sends every Log call to each of its loggers
type MultiLogger []Logger

var _ Logger = MultiLogger(nil)

func (c MultiLogger) Log(keyvals ...interface{}) {
	for _, l := range c {
		l.Log(keyvals...)
	}
}

// Disabled is true only when every wrapped logger is disabled
func (c MultiLogger) Disabled() bool {
	for _, l := range c {
		if !IsDisabled(l) {
			return false
		}
	}
	return true
}
