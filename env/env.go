// Package env reads typed values from environment variables, falling back to a default.
package env

import (
	"os"
	"strconv"
	"strings"
)

// GetStringEnvVar returns the value of envVar, or def when it is unset
func GetStringEnvVar(envVar string, def *string) *string {
	if val, ok := os.LookupEnv(envVar); ok {
		return &val
	}
	if def == nil {
		return nil
	}
	ret := *def
	return &ret
}

// GetBoolEnvVar parses envVar with strconv.ParseBool. Unset or unparsable values give def.
func GetBoolEnvVar(envVar string, def *bool) *bool {
	if val, ok := os.LookupEnv(envVar); ok {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			return &parsed
		}
	}
	if def == nil {
		return nil
	}
	ret := *def
	return &ret
}

// GetCommaSeparatedStringEnvVar splits envVar on commas, trimming space and dropping empty entries.
// A set but empty variable gives an empty, non-nil slice.
func GetCommaSeparatedStringEnvVar(envVar string, def []string) []string {
	val, ok := os.LookupEnv(envVar)
	if !ok {
		return def
	}
	ret := make([]string, 0, strings.Count(val, ",")+1)
	for _, s := range strings.Split(val, ",") {
		if s = strings.TrimSpace(s); s != "" {
			ret = append(ret, s)
		}
	}
	return ret
}
