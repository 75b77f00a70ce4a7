package nullish

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Method names a console-style facility is expected to provide
const (
	MethodLog    = "log"
	MethodInfo   = "info"
	MethodWarn   = "warn"
	MethodError  = "error"
	MethodAssert = "assert"
	MethodDebug  = "debug"
	MethodTrace  = "trace"
)

// Method is one named logging call of a facility
type Method func(args ...interface{})

// Facility is the underlying logger a GatedLogger forwards to.
// Method returns nil for names the facility does not provide.
type Facility interface {
	Method(name string) Method
}

// FacilityMap is a Facility built from a literal name to Method table
type FacilityMap map[string]Method

var _ Facility = FacilityMap(nil)

func (m FacilityMap) Method(name string) Method {
	return m[name]
}

func nop(...interface{}) {}

// Truthy coerces v to a bool: nil, false, numeric zero, NaN, "" and nil
// pointers, maps, slices, funcs and chans are false. Everything else is true.
func Truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// joinArgs renders args the way a console does: space separated
func joinArgs(args []interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

// assertFailed is the message assert emits, or "" when the assertion holds
func assertFailed(args []interface{}) string {
	if len(args) > 0 && Truthy(args[0]) {
		return ""
	}
	if len(args) < 2 {
		return "Assertion failed"
	}
	return "Assertion failed: " + joinArgs(args[1:])
}
