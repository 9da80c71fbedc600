package checks

import (
	"fmt"
	"strings"

	"corp/winaudit/core"
)

// MachineRole adalah peran mesin hasil mapping ProductType.
type MachineRole string

const (
	RoleWorkstation      MachineRole = "Workstation"
	RoleDomainController MachineRole = "DomainController"
	RoleServer           MachineRole = "Server"
	RoleUnknown          MachineRole = "Unknown"
)

// mapping tetap ProductType -> role; nilai di luar mapping = Unknown,
// bukan error fatal.
var productTypeRoles = map[string]MachineRole{
	"WinNT":    RoleWorkstation,
	"LanmanNT": RoleDomainController,
	"ServerNT": RoleServer,
}

// ReadMachineRole membaca ProductType dan memetakannya ke MachineRole.
func ReadMachineRole(r StateReader) (MachineRole, core.Value) {
	raw := r.ReadValue(PathProductOptions, "ProductType")
	if !raw.Present || raw.Kind != core.KindString {
		return RoleUnknown, raw
	}
	role, ok := productTypeRoles[raw.Str]
	if !ok {
		return RoleUnknown, raw
	}
	return role, raw
}

/*
   =========================
   W-002: BitLocker cascade
     1. Machine role: kebijakan BitLocker hanya dinilai untuk workstation
     2. BootStatus: terkonfigurasi & aktif atau tidak
     3. Enam field FVE di-resolve lewat decision table (default + validasi domain)
     4. Sintesis: compliant hanya kalau advanced startup wajib DAN minimal
        satu faktor kedua (PIN / startup key / key+PIN) diwajibkan
   =========================
*/

// CheckBitLocker mengevaluasi cascade BitLocker.
func CheckBitLocker(r StateReader) []core.Finding {
	findings := make([]core.Finding, 0, 4)

	// Langkah 1: role. Non-workstation tidak dinilai (by design): server
	// dan DC punya model enkripsi disk sendiri di luar kebijakan FVE ini.
	role, rawRole := ReadMachineRole(r)
	if role != RoleWorkstation {
		desc := fmt.Sprintf("machine role is %s, BitLocker startup policy does not apply", role)
		if !rawRole.Present {
			desc = "machine role unknown (ProductType not set), BitLocker startup policy does not apply"
		}
		findings = append(findings, core.NewFinding(
			PathProductOptions, "ProductType", rawRole, desc, core.Compliant))
		return findings
	}

	// Langkah 2: BootStatus.
	boot := r.ReadValue(PathBitLockerState, "BootStatus")
	switch {
	case !boot.Present:
		findings = append(findings, core.NewFinding(
			PathBitLockerState, "BootStatus", boot,
			"BitLocker boot status not configured", core.Unknown))
		return findings
	case boot.Int >= 1:
		findings = append(findings, core.NewFinding(
			PathBitLockerState, "BootStatus", boot,
			"BitLocker boot protection is enabled", core.Compliant))
	default:
		findings = append(findings, core.NewFinding(
			PathBitLockerState, "BootStatus", boot,
			"BitLocker boot protection is disabled", core.NonCompliant))
		return findings
	}

	// Langkah 3: resolve enam field FVE. Field invalid dilaporkan sebagai
	// Finding unknown tersendiri dan dikeluarkan dari sintesis.
	states := make([]FieldState, 0, len(fveTables))
	for _, table := range fveTables {
		st := table.Resolve(r.ReadValue(PathFVEPolicy, table.Field))
		if st.Invalid {
			findings = append(findings, core.NewFinding(
				PathFVEPolicy, st.Field, st.Raw,
				st.Description+", excluded from BitLocker compliance evaluation",
				core.Unknown))
			continue
		}
		states = append(states, st)
	}

	// Langkah 4: sintesis. Wajib advanced startup + minimal satu faktor
	// autentikasi kedua saat boot.
	findings = append(findings, synthesizeFVE(states))
	return findings
}

// synthesizeFVE menggabungkan field FVE valid jadi satu verdict dengan
// deskripsi yang menyebut faktor autentikasi per field, urut sesuai tabel.
func synthesizeFVE(states []FieldState) core.Finding {
	advancedStartup := false
	secondFactor := false
	parts := make([]string, 0, len(states))

	for _, st := range states {
		parts = append(parts, st.Description)
		switch st.Field {
		case "UseAdvancedStartup":
			advancedStartup = st.Value == 1
		case "UseTPMPIN", "UseTPMKey", "UseTPMKeyPIN":
			if st.Value == 1 {
				secondFactor = true
			}
		}
	}

	verdict := core.NonCompliant
	if advancedStartup && secondFactor {
		verdict = core.Compliant
	}

	// semua field bisa saja invalid; jangan keluarkan deskripsi kosong
	desc := strings.Join(parts, "; ")
	if len(states) == 0 {
		desc = "no valid FVE fields, advanced startup policy cannot be evaluated"
		verdict = core.Unknown
	}

	return core.NewFinding(PathFVEPolicy, "", core.Absent(), desc, verdict)
}
