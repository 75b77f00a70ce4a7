package nullish

import (
	"github.com/sirupsen/logrus"
)

type logrusFacility struct {
	logger logrus.FieldLogger
}

// Logrus forwards console methods to the matching logrus level. trace maps
// to Debug because FieldLogger has no Trace.
func Logrus(logger logrus.FieldLogger) Facility {
	return &logrusFacility{logger: logger}
}

func (f *logrusFacility) Method(name string) Method {
	var to func(...interface{})
	switch name {
	case MethodLog, MethodInfo:
		to = f.logger.Info
	case MethodWarn:
		to = f.logger.Warn
	case MethodError:
		to = f.logger.Error
	case MethodDebug, MethodTrace:
		to = f.logger.Debug
	case MethodAssert:
		return func(args ...interface{}) {
			if msg := assertFailed(args); msg != "" {
				f.logger.Error(msg)
			}
		}
	default:
		return nil
	}
	return func(args ...interface{}) {
		to(joinArgs(args))
	}
}
