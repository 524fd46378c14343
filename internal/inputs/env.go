package inputs

import (
	"strings"

	"env-remapper/internal/casing"
	"env-remapper/internal/remap"
	"env-remapper/internal/value"
)

// DefaultPrefix is the prefix GitHub Actions gives input variables.
const DefaultPrefix = "INPUT_"

// controlMarker follows the prefix on control parameter names.
const controlMarker = "__"

// Entries returns the user inputs found in environ, in environ order.
// environ holds "KEY=value" strings as returned by os.Environ.
func Entries(environ []string, prefix string) []remap.Entry {
	var entries []remap.Entry

	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, prefix) || strings.HasPrefix(key, prefix+controlMarker) {
			continue
		}

		entries = append(entries, remap.Entry{
			Path:  strings.TrimPrefix(key, prefix),
			Value: value.Parse(val),
		})
	}

	return entries
}

// Controls returns the control parameters found in environ keyed by their
// camel-cased names, with values parsed by value.Parse.
func Controls(environ []string, prefix string) map[string]any {
	controls := map[string]any{}
	toName := casing.For(casing.Camel, true)

	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, prefix+controlMarker) {
			continue
		}

		controls[toName(strings.TrimPrefix(key, prefix+controlMarker))] = value.Parse(val)
	}

	return controls
}
