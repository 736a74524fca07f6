//go:build unit || e2e

package testutil

import "maps"

// Field produces a mutator that sets a request map key, or removes it when
// value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// Body clones a request map and applies the mutators, so the original stays
// usable across test cases.
func Body(base map[string]any, muts ...func(map[string]any)) map[string]any {
	m := maps.Clone(base)
	for _, f := range muts {
		f(m)
	}
	return m
}
