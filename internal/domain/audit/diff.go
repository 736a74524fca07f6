package audit

import (
	"reflect"
)

// FieldSpec declares one auditable field of an entity type. The Value
// function projects the stored representation: plain values for scalar
// fields, Ref for fields that point at other entities, nil for absent
// optional values. Fields outside the declared set (timestamps, ORM
// bookkeeping, back references) never reach the trail.
type FieldSpec[T any] struct {
	Name  string
	Value func(T) any
}

// Diff compares two snapshots field by field using value equality.
//
// A field that is nil in the before snapshot is reported only when the
// after value is non-nil; a field that goes from non-nil to nil is
// reported as changed-to-null.
func Diff[T any](specs []FieldSpec[T], before, after T) []FieldChange {
	var changes []FieldChange
	for _, spec := range specs {
		oldVal := normalize(spec.Value(before))
		newVal := normalize(spec.Value(after))

		if oldVal == nil && newVal == nil {
			continue
		}
		if oldVal != nil && newVal != nil && reflect.DeepEqual(oldVal, newVal) {
			continue
		}
		changes = append(changes, FieldChange{Field: spec.Name, Old: oldVal, New: newVal})
	}
	return changes
}

// normalize collapses typed nil pointers and dereferences non-nil ones so
// optional fields compare by value.
func normalize(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		return rv.Elem().Interface()
	}
	return v
}
