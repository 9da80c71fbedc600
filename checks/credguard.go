package checks

import "corp/winaudit/core"

// CredentialGuardService adalah nama service yang dicari di daftar
// Device Guard.
const CredentialGuardService = "CredentialGuard"

// W-007: Credential Guard. Lima state terminal:
//   - OS terlalu tua            -> not_applicable
//   - introspeksi tidak bisa    -> unknown ("check failed", kode di Diagnostic)
//   - tidak dikonfigurasi       -> non_compliant
//   - dikonfigurasi, tidak run  -> non_compliant
//   - dikonfigurasi dan running -> compliant
//
// "check failed" tidak boleh tertukar dengan "not configured": yang
// pertama berarti kita tidak tahu, yang kedua berarti kita tahu tidak ada.
func CheckCredentialGuard(r StateReader) []core.Finding {
	if !r.OSVersion().SupportsCredentialGuard() {
		return []core.Finding{core.NewFinding(
			"CredentialGuard", "", core.Absent(),
			"Credential Guard is not supported on this OS version",
			core.NotApplicable)}
	}

	info, err := r.DeviceGuard()
	if err != nil {
		f := core.NewFinding("CredentialGuard", "", core.Absent(),
			"Credential Guard check failed, host introspection unavailable",
			core.Unknown)
		f.Diagnostic = err.Error()
		return []core.Finding{f}
	}

	if !containsService(info.Configured, CredentialGuardService) {
		return []core.Finding{core.NewFinding(
			"CredentialGuard", "SecurityServicesConfigured", core.BoolValue(false),
			"Credential Guard is not configured", core.NonCompliant)}
	}

	// daftar Running dibaca terpisah dari Configured
	if !containsService(info.Running, CredentialGuardService) {
		return []core.Finding{core.NewFinding(
			"CredentialGuard", "SecurityServicesRunning", core.BoolValue(false),
			"Credential Guard is configured but not running",
			core.NonCompliant)}
	}

	return []core.Finding{core.NewFinding(
		"CredentialGuard", "SecurityServicesRunning", core.BoolValue(true),
		"Credential Guard is configured and running", core.Compliant)}
}

func containsService(services []string, name string) bool {
	for _, s := range services {
		if s == name {
			return true
		}
	}
	return false
}
