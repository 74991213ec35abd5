// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru/mobile-ci/cli/internal/meta"
)

// LookupFunc matches os.LookupEnv so tests can supply a fixed environment.
type LookupFunc func(key string) (string, bool)

// HostEnvKey constructs a tool-level environment variable name.
// Example: HostEnvKey("SDK") returns "MOBILECI_SDK".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// LookupHostEnv returns the trimmed value of a tool-level variable.
// Variables that are unset or blank report false.
func LookupHostEnv(lookup LookupFunc, suffix string) (string, bool) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	value, ok := lookup(HostEnvKey(suffix))
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}

// MapLookup adapts a map to a LookupFunc.
func MapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}
