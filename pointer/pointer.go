// Package pointer returns pointers to literal values, for optional settings that default to nil.
package pointer

// Bool returns a pointer to b
func Bool(b bool) *bool {
	return &b
}

// String returns a pointer to s
func String(s string) *string {
	return &s
}
