package checks

import (
	"fmt"
	"strings"
	"testing"

	"corp/winaudit/core"
)

func TestDecisionTable_Resolve(t *testing.T) {
	table := DecisionTable{
		Field:   "UseTPM",
		Default: 1, Min: 0, Max: 2,
		Meaning: map[uint64]string{
			0: "do not allow TPM",
			1: "require TPM",
			2: "allow TPM",
		},
	}

	t.Run("absent uses default and says so", func(t *testing.T) {
		st := table.Resolve(core.Absent())
		if !st.Defaulted || st.Invalid {
			t.Fatalf("state = %+v, want defaulted valid", st)
		}
		if st.Value != 1 {
			t.Errorf("value = %d, want default 1", st.Value)
		}
		if !strings.Contains(st.Description, "default, value not set") {
			t.Errorf("description %q does not state the default assumption", st.Description)
		}
	})

	t.Run("in-domain value", func(t *testing.T) {
		st := table.Resolve(core.IntValue(2))
		if st.Defaulted || st.Invalid {
			t.Fatalf("state = %+v, want plain valid", st)
		}
		if st.Description != "UseTPM: allow TPM" {
			t.Errorf("description = %q", st.Description)
		}
	})

	t.Run("out-of-domain flags invalid and keeps the raw value", func(t *testing.T) {
		st := table.Resolve(core.IntValue(5))
		if !st.Invalid {
			t.Fatal("out-of-range value not flagged invalid")
		}
		if !st.Raw.Present || st.Raw.Int != 5 {
			t.Errorf("raw value = %s, want 5", st.Raw.String())
		}
		if !strings.Contains(st.Description, "unexpected value 5") {
			t.Errorf("description = %q", st.Description)
		}
	})

	t.Run("non-integer flags invalid", func(t *testing.T) {
		st := table.Resolve(core.StrValue("yes"))
		if !st.Invalid {
			t.Fatal("non-integer value not flagged invalid")
		}
	})
}

// Property test: seluruh domain tiap tabel FVE harus punya deskripsi, dan
// resolusi nilai di dalam domain tidak pernah invalid maupun defaulted.
func TestFVETables_FullDomain(t *testing.T) {
	for _, table := range FVETables() {
		t.Run(table.Field, func(t *testing.T) {
			if table.Default < table.Min || table.Default > table.Max {
				t.Fatalf("default %d outside domain %d-%d", table.Default, table.Min, table.Max)
			}
			for v := table.Min; v <= table.Max; v++ {
				if _, ok := table.Meaning[v]; !ok {
					t.Errorf("value %d has no description", v)
				}
				st := table.Resolve(core.IntValue(v))
				if st.Invalid || st.Defaulted {
					t.Errorf("in-domain value %d resolved as %+v", v, st)
				}
				want := fmt.Sprintf("%s: %s", table.Field, table.Meaning[v])
				if st.Description != want {
					t.Errorf("description = %q, want %q", st.Description, want)
				}
			}
			// tepat di luar domain
			st := table.Resolve(core.IntValue(table.Max + 1))
			if !st.Invalid {
				t.Errorf("value %d past domain not flagged invalid", table.Max+1)
			}
		})
	}
}
