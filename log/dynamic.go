package log

import (
	"github.com/go-stack/stack"
)

// Dynamic values are resolved at the moment a Context logs them
type Dynamic interface {
	LogValue() interface{}
}

// DynamicFunc defers computing a value until a record is actually written
type DynamicFunc func() interface{}

func (d DynamicFunc) LogValue() interface{} {
	return d()
}

// resolveDynamic returns keyvals with every Dynamic replaced by its value.
// keyvals itself is returned, uncopied, when it holds no Dynamic.
func resolveDynamic(keyvals []interface{}) []interface{} {
	for i := range keyvals {
		if _, ok := keyvals[i].(Dynamic); !ok {
			continue
		}
		ret := make([]interface{}, len(keyvals))
		copy(ret, keyvals)
		for j := i; j < len(ret); j++ {
			if d, ok := ret[j].(Dynamic); ok {
				ret[j] = d.LogValue()
			}
		}
		return ret
	}
	return keyvals
}

// Caller resolves to the file:line Depth frames above LogValue
type Caller struct {
	Depth int
}

func (c *Caller) LogValue() interface{} {
	return stack.Caller(c.Depth)
}

// DefaultCaller names the function that called Context.Log
var DefaultCaller = &Caller{Depth: 3}
