package nullish

import (
	"github.com/signalfx/nullish/log"
)

type keyvalsFacility struct {
	logger log.Logger
}

// Keyvals sends each console call to logger as method=<name> msg=<joined args>.
// Pair it with log.NewLogfmtLogger or log.NewJSONLogger for line oriented output.
func Keyvals(logger log.Logger) Facility {
	return &keyvalsFacility{logger: logger}
}

func (f *keyvalsFacility) Method(name string) Method {
	switch name {
	case MethodLog, MethodInfo, MethodWarn, MethodError, MethodDebug, MethodTrace:
		return func(args ...interface{}) {
			f.logger.Log("method", name, "msg", joinArgs(args))
		}
	case MethodAssert:
		return func(args ...interface{}) {
			if msg := assertFailed(args); msg != "" {
				f.logger.Log("method", name, "msg", msg)
			}
		}
	}
	return nil
}

// Gokit is Keyvals over a go-kit logger. Records it fails to write go to log.DefaultErrorHandler.
func Gokit(logger log.ErrorLogger) Facility {
	return Keyvals(log.FromGokit(logger))
}
