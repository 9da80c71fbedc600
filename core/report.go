package core

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"
)

// ScanReport adalah laporan lengkap hasil audit
type ScanReport struct {
	Metadata Metadata      `json:"metadata"`
	Summary  Summary       `json:"summary"`
	Findings []CheckResult `json:"findings"`
}

// Metadata informasi scan
type Metadata struct {
	Tool     string    `json:"tool"`
	Version  string    `json:"version"`
	ScanTime time.Time `json:"scan_time"`
	Duration string    `json:"duration"`
	Hostname string    `json:"hostname,omitempty"`
	Username string    `json:"username,omitempty"`
	OS       string    `json:"os,omitempty"`
	IsAdmin  bool      `json:"is_admin"`
}

// Summary ringkasan verdict per kategori
type Summary struct {
	TotalChecks   int            `json:"total_checks"`
	Compliant     int            `json:"compliant"`
	NonCompliant  int            `json:"non_compliant"`
	Unknown       int            `json:"unknown"`
	NotApplicable int            `json:"not_applicable"`
	Errors        int            `json:"errors"`
	ByCategory    map[string]int `json:"by_category"` // hitung non_compliant per kategori
}

// GenerateReport membuat laporan dari hasil scan
func GenerateReport(results []CheckResult, metadata Metadata) ScanReport {
	summary := Summary{
		TotalChecks: len(results),
		ByCategory:  make(map[string]int),
	}

	for _, r := range results {
		switch r.Status {
		case string(Compliant):
			summary.Compliant++
		case string(NonCompliant):
			summary.NonCompliant++
			summary.ByCategory[r.Category]++
		case string(Unknown):
			summary.Unknown++
		case string(NotApplicable):
			summary.NotApplicable++
		case "error", "timeout":
			summary.Errors++
		}
	}

	// Sort results by CheckID
	sort.Slice(results, func(i, j int) bool {
		return results[i].CheckID < results[j].CheckID
	})

	return ScanReport{
		Metadata: metadata,
		Summary:  summary,
		Findings: results,
	}
}

// WriteJSON menulis report ke JSON
func WriteJSON(w io.Writer, report ScanReport, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // biar & tidak di-escape jadi unicode

	if pretty {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(report)
}

// PrintSummaryTable mencetak tabel ringkasan ke terminal (user-friendly)
func PrintSummaryTable(report ScanReport, w io.Writer) {
	fmt.Fprintln(w, "\n"+Colorize("═══════════════════════════════════════════════════════════", ColorCyan))
	fmt.Fprintln(w, Colorize("                    AUDIT SUMMARY", ColorCyan))
	fmt.Fprintln(w, Colorize("═══════════════════════════════════════════════════════════", ColorCyan))

	fmt.Fprintf(w, "\n%-25s: %s\n", "Scan Time", report.Metadata.ScanTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "%-25s: %s\n", "Duration", report.Metadata.Duration)
	fmt.Fprintf(w, "%-25s: %s\n", "Hostname", report.Metadata.Hostname)
	fmt.Fprintf(w, "%-25s: %s\n", "User", report.Metadata.Username)
	fmt.Fprintf(w, "%-25s: %s\n", "OS Version", report.Metadata.OS)
	fmt.Fprintf(w, "%-25s: %v\n", "Admin Privileges", report.Metadata.IsAdmin)

	fmt.Fprintln(w, "\n"+Colorize("───────────────────────────────────────────────────────────", ColorGray))
	fmt.Fprintln(w, Colorize("  Check Results", ColorCyan))
	fmt.Fprintln(w, Colorize("───────────────────────────────────────────────────────────", ColorGray))

	fmt.Fprintf(w, "  %-20s: %d\n", "Total Checks", report.Summary.TotalChecks)
	fmt.Fprintf(w, "  %-20s: %s\n", "Compliant", Colorize(fmt.Sprintf("%d", report.Summary.Compliant), ColorGreen))
	fmt.Fprintf(w, "  %-20s: %s\n", "Non-Compliant", Colorize(fmt.Sprintf("%d", report.Summary.NonCompliant), ColorRed))
	fmt.Fprintf(w, "  %-20s: %d\n", "Unknown", report.Summary.Unknown)
	fmt.Fprintf(w, "  %-20s: %d\n", "Not Applicable", report.Summary.NotApplicable)
	fmt.Fprintf(w, "  %-20s: %d\n", "Errors", report.Summary.Errors)

	if len(report.Summary.ByCategory) > 0 {
		fmt.Fprintln(w, "\n"+Colorize("───────────────────────────────────────────────────────────", ColorGray))
		fmt.Fprintln(w, Colorize("  Non-Compliant by Category", ColorCyan))
		fmt.Fprintln(w, Colorize("───────────────────────────────────────────────────────────", ColorGray))

		for cat, count := range report.Summary.ByCategory {
			fmt.Fprintf(w, "  %-30s: %d\n", cat, count)
		}
	}

	// Detail per finding supaya operator tidak harus parse JSON
	fmt.Fprintln(w, "\n"+Colorize("───────────────────────────────────────────────────────────", ColorGray))
	fmt.Fprintln(w, Colorize("  Findings", ColorCyan))
	fmt.Fprintln(w, Colorize("───────────────────────────────────────────────────────────", ColorGray))

	for _, r := range report.Findings {
		fmt.Fprintf(w, "\n  [%s] %s (%s)\n", r.CheckID, r.CheckName, statusColored(r.Status))
		for _, f := range r.Findings {
			field := f.FieldName
			if field == "" {
				field = "-"
			}
			fmt.Fprintf(w, "    %-28s %-10s %s\n", field, f.RawValue.String(), f.Description)
		}
		if r.Error != "" {
			fmt.Fprintf(w, "    %s\n", Colorize(r.Error, ColorYellow))
		}
	}

	fmt.Fprintln(w, "\n"+Colorize("═══════════════════════════════════════════════════════════", ColorCyan))
}

func statusColored(status string) string {
	switch status {
	case string(NonCompliant):
		return Colorize("NON-COMPLIANT", ColorRed)
	case string(Compliant):
		return Colorize("COMPLIANT", ColorGreen)
	case "error", "timeout":
		return Colorize("ERROR", ColorYellow)
	case string(NotApplicable):
		return Colorize("N/A", ColorGray)
	default:
		return Colorize("UNKNOWN", ColorGray)
	}
}
