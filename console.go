package nullish

import (
	"fmt"
	"io"
	"sync"
)

// Console is the default facility. log, info, debug and trace go to Out;
// warn, error and failed asserts go to Err.
//
// A Console writes each record with one Write under its own lock. The lock is
// per Console: two Consoles over the same writer (both over os.Stdout, say)
// may interleave their records. Share one Console to keep lines whole.
type Console struct {
	Out io.Writer
	Err io.Writer

	mu sync.Mutex
}

var _ Facility = &Console{}

// NewConsole returns a Console writing to out and errOut
func NewConsole(out io.Writer, errOut io.Writer) *Console {
	return &Console{
		Out: out,
		Err: errOut,
	}
}

// Method returns the console call for name, or nil for names a console does not have
func (c *Console) Method(name string) Method {
	switch name {
	case MethodLog, MethodInfo, MethodDebug, MethodTrace:
		return c.printer(c.Out)
	case MethodWarn, MethodError:
		return c.printer(c.Err)
	case MethodAssert:
		return c.assert
	}
	return nil
}

func (c *Console) printer(w io.Writer) Method {
	return func(args ...interface{}) {
		c.write(w, args...)
	}
}

func (c *Console) assert(args ...interface{}) {
	if msg := assertFailed(args); msg != "" {
		c.write(c.Err, msg)
	}
}

func (c *Console) write(w io.Writer, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// A console has nowhere to report its own write failures.
	_, _ = fmt.Fprintln(w, args...)
}
