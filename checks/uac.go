package checks

import "corp/winaudit/core"

/*
   =========================
   W-001: UAC cascade
   Tiga langkah berurutan, tiap langkah menghasilkan Finding sendiri dan
   langkah berikutnya hanya jalan kalau kondisi gating langkah sebelumnya
   terpenuhi:
     1. EnableLUA                     -> UAC on/off
     2. LocalAccountTokenFilterPolicy -> siapa yang dapat token remote high-integrity
     3. FilterAdministratorToken      -> nasib token remote built-in admin (RID 500)
   =========================
*/

// CheckUAC mengevaluasi cascade UAC dan mengembalikan 1..3 Finding.
func CheckUAC(r StateReader) []core.Finding {
	findings := make([]core.Finding, 0, 3)

	// Langkah 1: EnableLUA. Absent atau 0 = UAC mati; percuma lanjut,
	// kebijakan token-filtering remote jadi tidak bermakna.
	enableLUA := r.ReadValue(PathPoliciesSystem, "EnableLUA")
	if !enableLUA.Present || enableLUA.Int == 0 {
		desc := "UAC is disabled (EnableLUA=0)"
		if !enableLUA.Present {
			desc = "UAC is disabled (EnableLUA not set, disabled assumed)"
		}
		findings = append(findings, core.NewFinding(
			PathPoliciesSystem, "EnableLUA", enableLUA, desc, core.NonCompliant))
		return findings
	}

	findings = append(findings, core.NewFinding(
		PathPoliciesSystem, "EnableLUA", enableLUA,
		"UAC is enabled", core.Compliant))

	// Langkah 2: LocalAccountTokenFilterPolicy. >=1 berarti SEMUA local
	// admin dapat token remote high-integrity (pass-the-hash friendly).
	tokenFilter := r.ReadValue(PathPoliciesSystem, "LocalAccountTokenFilterPolicy")
	if tokenFilter.Present && tokenFilter.Int >= 1 {
		findings = append(findings, core.NewFinding(
			PathPoliciesSystem, "LocalAccountTokenFilterPolicy", tokenFilter,
			"all local administrators receive high-integrity tokens on remote logons",
			core.NonCompliant))
		return findings
	}

	desc := "remote token filtering active, only the built-in Administrator (RID 500) is exempt-eligible"
	if !tokenFilter.Present {
		desc = "remote token filtering active (value not set, default 0 assumed), only the built-in Administrator (RID 500) is exempt-eligible"
	}
	findings = append(findings, core.NewFinding(
		PathPoliciesSystem, "LocalAccountTokenFilterPolicy", tokenFilter,
		desc, core.Compliant))

	// Langkah 3: FilterAdministratorToken. >=1 = token remote built-in
	// admin ikut difilter ke medium integrity. Absent/0 adalah default
	// Windows, sekaligus posisi paling tidak hardened.
	adminToken := r.ReadValue(PathPoliciesSystem, "FilterAdministratorToken")
	if adminToken.Present && adminToken.Int >= 1 {
		findings = append(findings, core.NewFinding(
			PathPoliciesSystem, "FilterAdministratorToken", adminToken,
			"built-in Administrator remote tokens are filtered to medium integrity",
			core.Compliant))
		return findings
	}

	desc = "built-in Administrator still receives high-integrity remote tokens (FilterAdministratorToken=0)"
	if !adminToken.Present {
		desc = "built-in Administrator still receives high-integrity remote tokens (value not set, default 0 assumed)"
	}
	findings = append(findings, core.NewFinding(
		PathPoliciesSystem, "FilterAdministratorToken", adminToken,
		desc, core.NonCompliant))

	return findings
}
