//go:build unit

package audit_test

import (
	"testing"
	"time"

	"hotelcore/internal/domain/audit"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	name      string
	status    string
	checkedIn *time.Time
	room      audit.Ref
}

var snapshotSpecs = []audit.FieldSpec[snapshot]{
	{Name: "name", Value: func(s snapshot) any { return s.name }},
	{Name: "status", Value: func(s snapshot) any { return s.status }},
	{Name: "checkedIn", Value: func(s snapshot) any { return s.checkedIn }},
	{Name: "room", Value: func(s snapshot) any { return s.room }},
}

func TestDiff(t *testing.T) {
	at := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	base := snapshot{name: "Deluxe", status: "CONFIRMED", room: audit.Ref{ID: "r-1", Label: "101"}}

	t.Run("no changes yields empty diff", func(t *testing.T) {
		assert.Empty(t, audit.Diff(snapshotSpecs, base, base))
	})

	t.Run("changed scalar is captured", func(t *testing.T) {
		after := base
		after.status = "CHECKED_IN"

		changes := audit.Diff(snapshotSpecs, base, after)
		want := []audit.FieldChange{{Field: "status", Old: "CONFIRMED", New: "CHECKED_IN"}}
		assert.Empty(t, cmp.Diff(want, changes))
	})

	t.Run("nil to nil is skipped", func(t *testing.T) {
		changes := audit.Diff(snapshotSpecs, base, base)
		for _, c := range changes {
			assert.NotEqual(t, "checkedIn", c.Field)
		}
	})

	t.Run("nil to value is captured", func(t *testing.T) {
		after := base
		after.checkedIn = &at

		changes := audit.Diff(snapshotSpecs, base, after)
		want := []audit.FieldChange{{Field: "checkedIn", Old: nil, New: at}}
		assert.Empty(t, cmp.Diff(want, changes))
	})

	t.Run("value to nil is captured as changed-to-null", func(t *testing.T) {
		before := base
		before.checkedIn = &at

		changes := audit.Diff(snapshotSpecs, before, base)
		want := []audit.FieldChange{{Field: "checkedIn", Old: at, New: nil}}
		assert.Empty(t, cmp.Diff(want, changes))
	})

	t.Run("pointers compare by pointee", func(t *testing.T) {
		before := base
		after := base
		t1, t2 := at, at
		before.checkedIn = &t1
		after.checkedIn = &t2

		assert.Empty(t, audit.Diff(snapshotSpecs, before, after))
	})

	t.Run("ref change is captured with both refs", func(t *testing.T) {
		after := base
		after.room = audit.Ref{ID: "r-2", Label: "205"}

		changes := audit.Diff(snapshotSpecs, base, after)
		want := []audit.FieldChange{{
			Field: "room",
			Old:   audit.Ref{ID: "r-1", Label: "101"},
			New:   audit.Ref{ID: "r-2", Label: "205"},
		}}
		assert.Empty(t, cmp.Diff(want, changes))
	})

	t.Run("multiple changes keep spec order", func(t *testing.T) {
		after := base
		after.name = "Suite"
		after.status = "CANCELLED"

		changes := audit.Diff(snapshotSpecs, base, after)
		require.Len(t, changes, 2)
		assert.Equal(t, "name", changes[0].Field)
		assert.Equal(t, "status", changes[1].Field)
	})
}
