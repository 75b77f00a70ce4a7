package log

import (
	"errors"
)

// Logger is the key/value logger the gate reports its own reconfigurations to
type Logger interface {
	Log(keyvals ...interface{})
}

// Disablable loggers can report that nothing they are given will be written
type Disablable interface {
	Disabled() bool
}

// ErrorHandler picks where a record goes after its logger failed to write it
type ErrorHandler interface {
	ErrorLogger(error) Logger
}

type ErrorHandlingLogger interface {
	Logger
	ErrorHandler
}

// ErrMissingValue pads a key that was logged without a value
var ErrMissingValue = errors.New("(MISSING)")

// IsDisabled is true if l is Disablable and currently disabled
func IsDisabled(l Logger) bool {
	d, ok := l.(Disablable)
	return ok && d.Disabled()
}

// Context carries key/values that prefix every Log call made through it
type Context struct {
	Logger  Logger
	KeyVals []interface{}
}

// NewContext wraps logger, returning logger itself if it is already a *Context
func NewContext(logger Logger) *Context {
	if c, ok := logger.(*Context); ok {
		return c
	}
	return &Context{Logger: logger}
}

// appendPairs appends kvs to dst, padding a trailing key with ErrMissingValue
func appendPairs(dst, kvs []interface{}) []interface{} {
	dst = append(dst, kvs...)
	if len(kvs)%2 != 0 {
		dst = append(dst, ErrMissingValue)
	}
	return dst
}

func joinPairs(first, second []interface{}) []interface{} {
	ret := make([]interface{}, 0, len(first)+len(second)+2)
	return appendPairs(appendPairs(ret, first), second)
}

// Log forwards the context key/values followed by keyvals
func (l *Context) Log(keyvals ...interface{}) {
	// Dynamic values may be slow to resolve, so skip them when nothing would be written.
	if IsDisabled(l.Logger) {
		return
	}
	l.Logger.Log(resolveDynamic(joinPairs(l.KeyVals, keyvals))...)
}

// Disabled is true if the wrapped logger is disabled
func (l *Context) Disabled() bool {
	return IsDisabled(l.Logger)
}

// With returns a new Context whose key/values follow the existing ones
func (l *Context) With(keyvals ...interface{}) *Context {
	if len(keyvals) == 0 {
		return l
	}
	return &Context{Logger: l.Logger, KeyVals: joinPairs(l.KeyVals, keyvals)}
}

// WithPrefix returns a new Context whose key/values precede the existing ones
func (l *Context) WithPrefix(keyvals ...interface{}) *Context {
	if len(keyvals) == 0 {
		return l
	}
	return &Context{Logger: l.Logger, KeyVals: joinPairs(keyvals, l.KeyVals)}
}
