package checks

import (
	"reflect"
	"strings"
	"testing"

	"corp/winaudit/core"
)

func TestCheckUAC_Cascade(t *testing.T) {
	tests := []struct {
		name         string
		enableLUA    core.Value
		tokenFilter  core.Value
		adminToken   core.Value
		wantCount    int
		wantVerdicts []core.Compliance
	}{
		{
			name:         "uac disabled stops cascade",
			enableLUA:    core.IntValue(0),
			wantCount:    1,
			wantVerdicts: []core.Compliance{core.NonCompliant},
		},
		{
			name:         "uac value absent treated as disabled",
			enableLUA:    core.Absent(),
			wantCount:    1,
			wantVerdicts: []core.Compliance{core.NonCompliant},
		},
		{
			name:         "token filter policy open stops at step two",
			enableLUA:    core.IntValue(1),
			tokenFilter:  core.IntValue(1),
			wantCount:    2,
			wantVerdicts: []core.Compliance{core.Compliant, core.NonCompliant},
		},
		{
			name:         "full cascade with filtered admin token",
			enableLUA:    core.IntValue(1),
			tokenFilter:  core.IntValue(0),
			adminToken:   core.IntValue(1),
			wantCount:    3,
			wantVerdicts: []core.Compliance{core.Compliant, core.Compliant, core.Compliant},
		},
		{
			name:         "full cascade default admin token is noncompliant",
			enableLUA:    core.IntValue(1),
			wantCount:    3,
			wantVerdicts: []core.Compliance{core.Compliant, core.Compliant, core.NonCompliant},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeReader()
			r.set(PathPoliciesSystem, "EnableLUA", tt.enableLUA)
			r.set(PathPoliciesSystem, "LocalAccountTokenFilterPolicy", tt.tokenFilter)
			r.set(PathPoliciesSystem, "FilterAdministratorToken", tt.adminToken)

			findings := CheckUAC(r)
			if len(findings) != tt.wantCount {
				t.Fatalf("finding count = %d, want %d", len(findings), tt.wantCount)
			}
			for i, want := range tt.wantVerdicts {
				if findings[i].Compliance != want {
					t.Errorf("finding[%d] compliance = %s, want %s", i, findings[i].Compliance, want)
				}
			}
		})
	}
}

func TestCheckUAC_AbsentMentionsDefault(t *testing.T) {
	r := newFakeReader()
	r.set(PathPoliciesSystem, "EnableLUA", core.IntValue(1))

	findings := CheckUAC(r)
	if len(findings) != 3 {
		t.Fatalf("finding count = %d, want 3", len(findings))
	}
	// kedua nilai absent harus menyebut default yang diasumsikan
	for _, i := range []int{1, 2} {
		if !strings.Contains(findings[i].Description, "default") {
			t.Errorf("finding[%d] description %q does not state the assumed default", i, findings[i].Description)
		}
		if findings[i].RawValue.String() != core.NullSentinel {
			t.Errorf("finding[%d] raw value = %q, want %q", i, findings[i].RawValue.String(), core.NullSentinel)
		}
	}
}

func TestCheckUAC_NoFurtherReadsAfterStop(t *testing.T) {
	r := newFakeReader()
	r.set(PathPoliciesSystem, "EnableLUA", core.IntValue(0))

	CheckUAC(r)
	if len(r.readCalls) != 1 {
		t.Fatalf("read calls = %v, want only EnableLUA", r.readCalls)
	}
}

func TestCheckUAC_Idempotent(t *testing.T) {
	r := newFakeReader()
	r.set(PathPoliciesSystem, "EnableLUA", core.IntValue(1))
	r.set(PathPoliciesSystem, "LocalAccountTokenFilterPolicy", core.IntValue(0))
	r.set(PathPoliciesSystem, "FilterAdministratorToken", core.IntValue(1))

	first := CheckUAC(r)
	second := CheckUAC(r)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated invocation differs:\n%v\n%v", first, second)
	}
}
