package checks

import (
	"fmt"

	"corp/winaudit/core"
)

// FirmwareMode adalah state deteksi firmware: Unknown -> {Legacy, UEFI}.
type FirmwareMode string

const (
	FirmwareUnknown FirmwareMode = "Unknown"
	FirmwareLegacy  FirmwareMode = "Legacy"
	FirmwareUEFI    FirmwareMode = "UEFI"
)

// Kode return GetFirmwareType.
const (
	firmwareTypeBIOS uint32 = 1
	firmwareTypeUEFI uint32 = 2
)

// ERROR_INVALID_FUNCTION: firmware tidak mengimplementasi API variable
// sama sekali = legacy BIOS. Kode gagal lain berarti API ada (UEFI),
// cuma variabelnya memang tidak ditemukan.
const errInvalidFunction uint32 = 1

// W-005: deteksi mode firmware, strategi dipilih berdasarkan versi OS:
// API langsung (Win8+), probe fallback (Win7), atau menyerah ke Unknown.

// CheckFirmwareMode mendeteksi UEFI vs Legacy BIOS dan mengembalikan satu
// Finding bersubjek sintetis "UEFI".
func CheckFirmwareMode(r StateReader) []core.Finding {
	ver := r.OSVersion()

	switch {
	case ver.SupportsFirmwareTypeAPI():
		return []core.Finding{firmwareByAPI(r)}
	case ver.SupportsFirmwareProbe():
		return []core.Finding{firmwareByProbe(r)}
	default:
		return []core.Finding{core.NewFinding(
			"UEFI", "", core.Absent(),
			"cannot determine firmware mode on this OS version",
			core.Unknown)}
	}
}

// firmwareByAPI: query GetFirmwareType sekali; 1=Legacy, 2=UEFI, selain
// itu (termasuk call failure) Unknown dengan kode tersimpan di Diagnostic.
func firmwareByAPI(r StateReader) core.Finding {
	code, err := r.ReadFirmwareType()
	if err != nil {
		f := core.NewFinding("UEFI", "", core.Absent(),
			"firmware type query failed, firmware mode unknown", core.Unknown)
		f.Diagnostic = err.Error()
		return f
	}

	switch code {
	case firmwareTypeBIOS:
		return core.NewFinding("UEFI", "", core.IntValue(uint64(code)),
			"legacy BIOS firmware detected", core.NonCompliant)
	case firmwareTypeUEFI:
		return core.NewFinding("UEFI", "", core.IntValue(uint64(code)),
			"UEFI firmware detected", core.Compliant)
	default:
		// jangan menebak dari kode yang tidak dikenal
		f := core.NewFinding("UEFI", "", core.IntValue(uint64(code)),
			"firmware type query returned an unrecognized code, firmware mode unknown",
			core.Unknown)
		f.Diagnostic = fmt.Sprintf("firmware type code %d", code)
		return f
	}
}

// firmwareByProbe: panggil lookup firmware variable dengan nama invalid;
// yang diperiksa hanya kode gagalnya. Sukses tidak diharapkan dan
// diperlakukan sebagai UEFI (API-nya jelas ada).
func firmwareByProbe(r StateReader) core.Finding {
	code := r.ProbeFirmwareVariable()
	if code == errInvalidFunction {
		return core.NewFinding("UEFI", "", core.IntValue(uint64(code)),
			"firmware variable API not implemented, legacy BIOS firmware detected",
			core.NonCompliant)
	}
	return core.NewFinding("UEFI", "", core.IntValue(uint64(code)),
		"firmware variable API implemented, UEFI firmware detected",
		core.Compliant)
}
