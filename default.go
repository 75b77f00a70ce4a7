package nullish

// Default is the process wide GatedLogger, built with the default settings when the package loads.
var Default = New()

// Debug is Default's Handle as it was when the package loaded. It is a
// snapshot: later changes to Default's settings do not reach it. Read
// Default.Logger() again after reconfiguring to see them.
var Debug = Default.Logger()
