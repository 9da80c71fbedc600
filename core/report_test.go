package core

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sampleResults() []CheckResult {
	return []CheckResult{
		{CheckID: "W-002", Category: "disk_encryption", Status: string(NonCompliant),
			Findings: []Finding{{Subject: "FVE", RawValue: Absent(), Compliance: NonCompliant}}},
		{CheckID: "W-001", Category: "account_protection", Status: string(Compliant)},
		{CheckID: "W-007", Category: "credential_access", Status: string(Unknown)},
		{CheckID: "W-006", Category: "credential_access", Status: string(NotApplicable)},
		{CheckID: "W-005", Category: "boot_integrity", Status: "error", Error: "panic: boom"},
	}
}

func TestGenerateReport_SummaryAndOrder(t *testing.T) {
	report := GenerateReport(sampleResults(), Metadata{Tool: "winaudit", ScanTime: time.Now()})

	s := report.Summary
	if s.TotalChecks != 5 || s.Compliant != 1 || s.NonCompliant != 1 || s.Unknown != 1 || s.NotApplicable != 1 || s.Errors != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.ByCategory["disk_encryption"] != 1 {
		t.Errorf("by_category = %v", s.ByCategory)
	}

	for i := 1; i < len(report.Findings); i++ {
		if report.Findings[i-1].CheckID > report.Findings[i].CheckID {
			t.Fatalf("findings not sorted by check ID: %s before %s",
				report.Findings[i-1].CheckID, report.Findings[i].CheckID)
		}
	}
}

func TestWriteJSON_AbsentSentinelSurvivesRoundTrip(t *testing.T) {
	report := GenerateReport(sampleResults(), Metadata{Tool: "winaudit"})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, report, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), `"(null)"`) {
		t.Error("absent raw value not serialized as the (null) sentinel")
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
}
