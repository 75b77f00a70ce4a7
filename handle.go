package nullish

// Handle is the ready to call logger a GatedLogger derives from its settings.
// Suppressed names are bound in methods; every other name forwards to the facility.
// A Handle never changes after it is built. All methods are safe on a nil *Handle
// and drop the call, so a disabled logger can be used without checking.
type Handle struct {
	facility Facility
	methods  map[string]Method
	silenced map[string]bool
}

func newHandle(facility Facility) *Handle {
	return &Handle{
		facility: facility,
		methods:  make(map[string]Method),
		silenced: make(map[string]bool),
	}
}

func (h *Handle) silence(name string) {
	h.methods[name] = nop
	h.silenced[name] = true
}

func (h *Handle) restore(name string) {
	h.methods[name] = forward(h.facility, name)
	delete(h.silenced, name)
}

func forward(facility Facility, name string) Method {
	if m := facility.Method(name); m != nil {
		return m
	}
	return nop
}

// Method returns what a call to name does right now. It is never nil.
func (h *Handle) Method(name string) Method {
	if h == nil {
		return nop
	}
	if m, exists := h.methods[name]; exists {
		return m
	}
	return forward(h.facility, name)
}

// Silenced is true if name is bound to the no-op
func (h *Handle) Silenced(name string) bool {
	return h != nil && h.silenced[name]
}

// Call invokes the method called name. Names nothing provides are dropped.
func (h *Handle) Call(name string, args ...interface{}) {
	h.Method(name)(args...)
}

func (h *Handle) Log(args ...interface{}) {
	h.Call(MethodLog, args...)
}

func (h *Handle) Info(args ...interface{}) {
	h.Call(MethodInfo, args...)
}

func (h *Handle) Warn(args ...interface{}) {
	h.Call(MethodWarn, args...)
}

func (h *Handle) Error(args ...interface{}) {
	h.Call(MethodError, args...)
}

func (h *Handle) Debug(args ...interface{}) {
	h.Call(MethodDebug, args...)
}

func (h *Handle) Trace(args ...interface{}) {
	h.Call(MethodTrace, args...)
}

// Assert reports args through the facility's assert when cond is false
func (h *Handle) Assert(cond bool, args ...interface{}) {
	h.Call(MethodAssert, append([]interface{}{cond}, args...)...)
}
