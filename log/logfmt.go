package log

import (
	"io"

	"github.com/go-logfmt/logfmt"
	"github.com/signalfx/nullish/errors"
)

type LogfmtLogger struct {
	Out io.Writer
}

// NewLogfmtLogger returns a logger that encodes keyvals to the Writer in
// logfmt format. The passed Writer must be safe for concurrent use by
// multiple goroutines if the returned Logger will be used concurrently.
func NewLogfmtLogger(w io.Writer, errHandler ErrorHandler) Logger {
	if w == io.Discard {
		return Discard
	}
	return &ErrorLogLogger{
		RootLogger: &LogfmtLogger{
			Out: w,
		},
		ErrHandler: errHandler,
	}
}

func (l *LogfmtLogger) Log(keyvals ...interface{}) error {
	if len(keyvals) == 1 {
		keyvals = []interface{}{"message", keyvals[0]}
	}
	// One Write per record: collect everything into b first.
	b, err := logfmt.MarshalKeyvals(keyvals...)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if _, err := l.Out.Write(b); err != nil {
		return errors.Annotate(err, "cannot write out logfmt for log")
	}
	return nil
}
