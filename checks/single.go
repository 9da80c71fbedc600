package checks

import "corp/winaudit/core"

// Cek single-value: baca tepat satu nilai, klasifikasikan lewat pola
// absent/present/threshold yang sama untuk semuanya.

// W-004: Secure Boot. Key hanya ada di sistem UEFI dengan dukungan
// Secure Boot; absent berarti fiturnya tidak ada, bukan salah konfigurasi.
func CheckSecureBoot(r StateReader) []core.Finding {
	v := r.ReadValue(PathSecureBoot, "UEFISecureBootEnabled")
	switch {
	case !v.Present:
		return []core.Finding{core.NewFinding(
			PathSecureBoot, "UEFISecureBootEnabled", v,
			"Secure Boot state not exposed, not supported on this system",
			core.Unknown)}
	case v.Int == 1:
		return []core.Finding{core.NewFinding(
			PathSecureBoot, "UEFISecureBootEnabled", v,
			"Secure Boot is enabled", core.Compliant)}
	default:
		return []core.Finding{core.NewFinding(
			PathSecureBoot, "UEFISecureBootEnabled", v,
			"Secure Boot is disabled", core.NonCompliant)}
	}
}

// W-003: LAPS (legacy AdmPwd). Absent tidak dihukum non-compliant:
// host bisa saja pakai implementasi LAPS lain (mis. Windows LAPS baru).
func CheckLAPS(r StateReader) []core.Finding {
	v := r.ReadValue(PathLAPS, "AdmPwdEnabled")
	switch {
	case !v.Present:
		return []core.Finding{core.NewFinding(
			PathLAPS, "AdmPwdEnabled", v,
			"LAPS (AdmPwd) not configured, a different LAPS implementation may be in use",
			core.Unknown)}
	case v.Int >= 1:
		return []core.Finding{core.NewFinding(
			PathLAPS, "AdmPwdEnabled", v,
			"LAPS local administrator password management is enabled",
			core.Compliant)}
	default:
		return []core.Finding{core.NewFinding(
			PathLAPS, "AdmPwdEnabled", v,
			"LAPS is installed but disabled", core.NonCompliant)}
	}
}

// W-006: proteksi LSA (RunAsPPL), di-gate kapabilitas OS dulu: kalau OS
// tidak kenal RunAsPPL, short-circuit ke not_applicable tanpa membaca.
func CheckRunAsPPL(r StateReader) []core.Finding {
	if !r.OSVersion().SupportsRunAsPPL() {
		return []core.Finding{core.NewFinding(
			PathLsa, "RunAsPPL", core.Absent(),
			"RunAsPPL is not supported on this OS version",
			core.NotApplicable)}
	}

	v := r.ReadValue(PathLsa, "RunAsPPL")
	switch {
	case !v.Present:
		return []core.Finding{core.NewFinding(
			PathLsa, "RunAsPPL", v,
			"LSA protection not configured (value not set, disabled assumed)",
			core.NonCompliant)}
	case v.Int >= 1:
		return []core.Finding{core.NewFinding(
			PathLsa, "RunAsPPL", v,
			"LSA runs as a protected process", core.Compliant)}
	default:
		return []core.Finding{core.NewFinding(
			PathLsa, "RunAsPPL", v,
			"LSA protection is disabled", core.NonCompliant)}
	}
}

// W-009: WDigest UseLogonCredential. 1 berarti plaintext credential
// di-cache di LSASS. Absent = default aman sejak Windows 8.1.
func CheckWDigest(r StateReader) []core.Finding {
	v := r.ReadValue(PathWDigest, "UseLogonCredential")
	switch {
	case !v.Present:
		return []core.Finding{core.NewFinding(
			PathWDigest, "UseLogonCredential", v,
			"WDigest plaintext credential caching not configured (default since Windows 8.1: disabled)",
			core.Compliant)}
	case v.Int >= 1:
		return []core.Finding{core.NewFinding(
			PathWDigest, "UseLogonCredential", v,
			"WDigest caches plaintext credentials in LSASS",
			core.NonCompliant)}
	default:
		return []core.Finding{core.NewFinding(
			PathWDigest, "UseLogonCredential", v,
			"WDigest plaintext credential caching is disabled",
			core.Compliant)}
	}
}
