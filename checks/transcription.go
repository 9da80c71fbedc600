package checks

import (
	"fmt"

	"corp/winaudit/core"
)

// W-008: PowerShell transcription. Komposit tiga nilai, murni
// informasional (tidak ada verdict). Key policy yang absent = tidak ada
// yang perlu dilaporkan, cek ini tidak mengeluarkan Finding sama sekali.
func CheckTranscription(r StateReader) []core.Finding {
	enabled := r.ReadValue(PathTranscription, "EnableTranscripting")
	if !enabled.Present {
		return nil
	}

	header := r.ReadValue(PathTranscription, "EnableInvocationHeader")
	outDir := r.ReadValue(PathTranscription, "OutputDirectory")

	desc := fmt.Sprintf(
		"PowerShell transcription policy: EnableTranscripting=%s, EnableInvocationHeader=%s, OutputDirectory=%s",
		enabled.String(), header.String(), outDir.String())

	return []core.Finding{core.NewFinding(
		PathTranscription, "EnableTranscripting", enabled,
		desc, core.NotApplicable)}
}
