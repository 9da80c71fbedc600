package checks

import (
	"reflect"
	"testing"

	"corp/winaudit/core"
)

func TestCheckSecureBoot(t *testing.T) {
	tests := []struct {
		name  string
		value core.Value
		want  core.Compliance
	}{
		{"enabled", core.IntValue(1), core.Compliant},
		{"disabled", core.IntValue(0), core.NonCompliant},
		{"absent means not supported", core.Absent(), core.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeReader()
			r.set(PathSecureBoot, "UEFISecureBootEnabled", tt.value)

			findings := CheckSecureBoot(r)
			if len(findings) != 1 {
				t.Fatalf("finding count = %d, want 1", len(findings))
			}
			if findings[0].Compliance != tt.want {
				t.Errorf("compliance = %s, want %s", findings[0].Compliance, tt.want)
			}
		})
	}
}

func TestCheckLAPS(t *testing.T) {
	tests := []struct {
		name  string
		value core.Value
		want  core.Compliance
	}{
		{"enabled", core.IntValue(1), core.Compliant},
		{"disabled", core.IntValue(0), core.NonCompliant},
		// absent tidak dihukum: bisa jadi implementasi LAPS lain
		{"absent is unknown not noncompliant", core.Absent(), core.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeReader()
			r.set(PathLAPS, "AdmPwdEnabled", tt.value)

			findings := CheckLAPS(r)
			if len(findings) != 1 {
				t.Fatalf("finding count = %d, want 1", len(findings))
			}
			if findings[0].Compliance != tt.want {
				t.Errorf("compliance = %s, want %s", findings[0].Compliance, tt.want)
			}
		})
	}
}

func TestCheckRunAsPPL(t *testing.T) {
	t.Run("unsupported os short-circuits without reading", func(t *testing.T) {
		r := newFakeReader()
		r.version = OSVersion{Major: 6, Minor: 2} // Windows 8: belum ada RunAsPPL
		r.set(PathLsa, "RunAsPPL", core.IntValue(1))

		findings := CheckRunAsPPL(r)
		if len(findings) != 1 {
			t.Fatalf("finding count = %d, want 1", len(findings))
		}
		if findings[0].Compliance != core.NotApplicable {
			t.Errorf("compliance = %s, want not_applicable", findings[0].Compliance)
		}
		if len(r.readCalls) != 0 {
			t.Errorf("registry read attempted on unsupported OS: %v", r.readCalls)
		}
	})

	tests := []struct {
		name  string
		value core.Value
		want  core.Compliance
	}{
		{"enabled", core.IntValue(1), core.Compliant},
		{"disabled", core.IntValue(0), core.NonCompliant},
		{"absent defaults to disabled", core.Absent(), core.NonCompliant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeReader()
			r.set(PathLsa, "RunAsPPL", tt.value)

			findings := CheckRunAsPPL(r)
			if findings[0].Compliance != tt.want {
				t.Errorf("compliance = %s, want %s", findings[0].Compliance, tt.want)
			}
		})
	}
}

func TestCheckWDigest(t *testing.T) {
	tests := []struct {
		name  string
		value core.Value
		want  core.Compliance
	}{
		{"caching enabled", core.IntValue(1), core.NonCompliant},
		{"caching disabled", core.IntValue(0), core.Compliant},
		{"absent is safe default", core.Absent(), core.Compliant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeReader()
			r.set(PathWDigest, "UseLogonCredential", tt.value)

			findings := CheckWDigest(r)
			if findings[0].Compliance != tt.want {
				t.Errorf("compliance = %s, want %s", findings[0].Compliance, tt.want)
			}
		})
	}
}

// Semua field absent harus render sentinel "(null)", tidak pernah string
// kosong yang ambigu.
func TestAbsentValuesRenderSentinel(t *testing.T) {
	r := newFakeReader()

	all := [][]core.Finding{
		CheckSecureBoot(r),
		CheckLAPS(r),
		CheckRunAsPPL(r),
		CheckWDigest(r),
	}
	for _, findings := range all {
		for _, f := range findings {
			if f.RawValue.Present {
				continue
			}
			if got := f.RawValue.String(); got != core.NullSentinel {
				t.Errorf("%s\\%s: absent raw value renders %q, want %q", f.Subject, f.FieldName, got, core.NullSentinel)
			}
		}
	}
}

// Cek single-value harus idempoten: dua invokasi dengan state sama
// menghasilkan Finding identik.
func TestSingleValueChecksIdempotent(t *testing.T) {
	r := newFakeReader()
	r.set(PathSecureBoot, "UEFISecureBootEnabled", core.IntValue(1))
	r.set(PathLAPS, "AdmPwdEnabled", core.IntValue(0))
	r.set(PathLsa, "RunAsPPL", core.IntValue(1))

	checks := []func(StateReader) []core.Finding{
		CheckSecureBoot, CheckLAPS, CheckRunAsPPL, CheckWDigest,
	}
	for i, check := range checks {
		first := check(r)
		second := check(r)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("check %d not idempotent:\n%v\n%v", i, first, second)
		}
	}
}
