// Package nullishtest has a recording facility for asserting what a GatedLogger forwarded.
package nullishtest

import (
	"sync"

	"github.com/signalfx/nullish"
)

// ConsoleMethods are the names a Recorder provides unless told otherwise
var ConsoleMethods = []string{
	nullish.MethodLog,
	nullish.MethodInfo,
	nullish.MethodWarn,
	nullish.MethodError,
	nullish.MethodAssert,
	nullish.MethodDebug,
	nullish.MethodTrace,
}

// Record is one forwarded call
type Record struct {
	Method string
	Args   []interface{}
}

// Recorder is a Facility that keeps every call made through it
type Recorder struct {
	provides map[string]struct{}

	mu      sync.Mutex
	records []Record
}

var _ nullish.Facility = &Recorder{}

// NewRecorder provides methods, or ConsoleMethods when none are given
func NewRecorder(methods ...string) *Recorder {
	if len(methods) == 0 {
		methods = ConsoleMethods
	}
	r := &Recorder{
		provides: make(map[string]struct{}, len(methods)),
	}
	for _, m := range methods {
		r.provides[m] = struct{}{}
	}
	return r
}

func (r *Recorder) Method(name string) nullish.Method {
	if _, exists := r.provides[name]; !exists {
		return nil
	}
	return func(args ...interface{}) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.records = append(r.records, Record{
			Method: name,
			Args:   append([]interface{}(nil), args...),
		})
	}
}

// Records returns a copy of everything recorded so far
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Record(nil), r.records...)
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Count returns how many calls were made to method
func (r *Recorder) Count(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.records {
		if rec.Method == method {
			n++
		}
	}
	return n
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}
