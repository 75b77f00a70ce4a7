package nullish

import (
	"expvar"
	"os"
	"reflect"
	"strings"

	"github.com/signalfx/nullish/log"
)

// DefaultSuppress returns the suppress list a new GatedLogger starts with
func DefaultSuppress() []string {
	return []string{MethodInfo, MethodWarn}
}

// GatedLogger decides, from three settings, which facility methods its Handle forwards.
//
// enabled is the master switch: when false Logger returns nil. When quiet is
// true every name in the suppress list is bound to a no-op; when false those
// names forward again. Names outside the suppress list always forward.
//
// Every setter rebuilds the Handle before returning. A GatedLogger does no
// locking: reconfigure it from one goroutine at a time.
type GatedLogger struct {
	facility Facility
	enabled  bool
	quiet    bool
	suppress []string
	active   *Handle
	diag     *log.Context
}

// New returns a GatedLogger over a Console writing to stdout and stderr
func New() *GatedLogger {
	return NewWithFacility(NewConsole(os.Stdout, os.Stderr))
}

// NewWithFacility returns a GatedLogger with the default settings over facility.
// A nil facility provides nothing, so every call is dropped.
func NewWithFacility(facility Facility) *GatedLogger {
	if facility == nil {
		facility = FacilityMap{}
	}
	g := &GatedLogger{
		facility: facility,
		enabled:  true,
		quiet:    true,
		suppress: DefaultSuppress(),
		diag:     log.NewContext(log.Discard),
	}
	g.configure()
	return g
}

// SetDiagnostics sends the gate's own reconfiguration records to loggers.
// With no loggers the records are discarded again.
func (g *GatedLogger) SetDiagnostics(loggers ...log.Logger) {
	var logger log.Logger
	switch len(loggers) {
	case 0:
		logger = log.Discard
	case 1:
		logger = loggers[0]
	default:
		logger = log.MultiLogger(loggers)
	}
	// component leads even when logger is a Context carrying its own key/values
	g.diag = log.NewContext(logger).With("caller", log.DefaultCaller).WithPrefix("component", "nullish")
}

func (g *GatedLogger) configure() {
	if !g.enabled {
		g.active = nil
		g.diag.Log("msg", "configured", "enabled", false)
		return
	}
	h := newHandle(g.facility)
	for _, name := range g.suppress {
		if g.quiet {
			h.silence(name)
		} else {
			h.restore(name)
		}
	}
	g.active = h
	g.diag.Log("msg", "configured", "enabled", true, "quiet", g.quiet, "suppress", log.DynamicFunc(g.suppressValue))
}

// suppressValue joins the list only when a diagnostics record is written
func (g *GatedLogger) suppressValue() interface{} {
	return strings.Join(g.suppress, ",")
}

// Logger returns the current Handle, or nil when disabled
func (g *GatedLogger) Logger() *Handle {
	return g.active
}

func (g *GatedLogger) Enabled() bool {
	return g.enabled
}

func (g *GatedLogger) SetEnabled(enabled bool) {
	g.enabled = enabled
	g.configure()
}

// SetEnabledValue coerces v with Truthy
func (g *GatedLogger) SetEnabledValue(v interface{}) {
	g.SetEnabled(Truthy(v))
}

func (g *GatedLogger) Quiet() bool {
	return g.quiet
}

func (g *GatedLogger) SetQuiet(quiet bool) {
	g.quiet = quiet
	g.configure()
}

// SetQuietValue coerces v with Truthy
func (g *GatedLogger) SetQuietValue(v interface{}) {
	g.SetQuiet(Truthy(v))
}

// Suppress returns a copy of the suppress list
func (g *GatedLogger) Suppress() []string {
	return append([]string{}, g.suppress...)
}

// SetSuppress replaces the suppress list. v must be a slice or array whose
// every element is a string, named string types included. Anything else is
// rejected with an error for which IsInvalidArgument is true, and the
// settings are left as they were. Duplicate names keep their first position.
func (g *GatedLogger) SetSuppress(v interface{}) error {
	names, err := suppressNames(v)
	if err != nil {
		g.diag.Log("msg", "rejected suppress list", "err", err)
		return err
	}
	g.suppress = names
	g.configure()
	return nil
}

// SetSuppressNames is SetSuppress for callers that already hold strings
func (g *GatedLogger) SetSuppressNames(names ...string) {
	g.suppress = uniqueNames(names)
	g.configure()
}

func suppressNames(v interface{}) ([]string, error) {
	if t, ok := v.([]string); ok {
		return uniqueNames(t), nil
	}
	// Any slice or array whose elements are strings, including named string
	// types and []interface{} holding them.
	rv := reflect.ValueOf(v)
	if kind := rv.Kind(); kind != reflect.Slice && kind != reflect.Array {
		return nil, errInvalidSuppress(v)
	}
	names := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.String {
			return nil, errInvalidSuppressElement(i, rv.Index(i).Interface())
		}
		names = append(names, elem.String())
	}
	return uniqueNames(names), nil
}

func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	ret := make([]string, 0, len(names))
	for _, name := range names {
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}
		ret = append(ret, name)
	}
	return ret
}

// Var returns an expvar variable showing the current settings
func (g *GatedLogger) Var() expvar.Var {
	return expvar.Func(func() interface{} {
		return map[string]interface{}{
			"enabled":  g.enabled,
			"quiet":    g.quiet,
			"suppress": g.Suppress(),
		}
	})
}
