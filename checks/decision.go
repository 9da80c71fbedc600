package checks

import (
	"fmt"

	"corp/winaudit/core"
)

// DecisionTable memetakan nilai integer satu field kebijakan ke deskripsi,
// lengkap dengan default dan domain valid (inklusif). Tabel bersifat
// immutable dan dibangun sekali di init paket.
type DecisionTable struct {
	Field   string
	Default uint64
	Min     uint64
	Max     uint64
	Meaning map[uint64]string
}

// FieldState adalah hasil resolusi satu field terhadap tabelnya.
type FieldState struct {
	Field       string
	Raw         core.Value // nilai mentah apa adanya (absent tetap absent)
	Value       uint64     // nilai efektif (default kalau absent)
	Defaulted   bool       // true kalau default dipakai
	Invalid     bool       // true kalau nilai di luar domain / bukan integer
	Description string
}

// Resolve menerapkan tabel ke satu nilai mentah.
// Absent -> pakai default, deskripsi menyebut eksplisit bahwa default
// diasumsikan. Di luar domain -> Invalid, nilai mentah tetap dilaporkan,
// tidak pernah dikoersi diam-diam.
func (t DecisionTable) Resolve(raw core.Value) FieldState {
	st := FieldState{Field: t.Field, Raw: raw}

	if !raw.Present {
		st.Value = t.Default
		st.Defaulted = true
		st.Description = fmt.Sprintf("%s: %s (default, value not set)", t.Field, t.Meaning[t.Default])
		return st
	}

	if raw.Kind != core.KindInteger {
		st.Invalid = true
		st.Description = fmt.Sprintf("%s: unexpected non-integer value %q", t.Field, raw.String())
		return st
	}

	if raw.Int < t.Min || raw.Int > t.Max {
		st.Invalid = true
		st.Description = fmt.Sprintf("%s: unexpected value %d (valid range %d-%d)", t.Field, raw.Int, t.Min, t.Max)
		return st
	}

	st.Value = raw.Int
	st.Description = fmt.Sprintf("%s: %s", t.Field, t.Meaning[raw.Int])
	return st
}

// Tabel FVE (BitLocker startup authentication), urutan field = urutan
// sintesis deskripsi. Dua field pertama binary, sisanya 0-2
// (0=do not allow, 1=require, 2=allow).
var fveTables = []DecisionTable{
	{
		Field:   "UseAdvancedStartup",
		Default: 0, Min: 0, Max: 1,
		Meaning: map[uint64]string{
			0: "do not require additional authentication at startup",
			1: "require additional authentication at startup",
		},
	},
	{
		Field:   "EnableBDEWithNoTPM",
		Default: 0, Min: 0, Max: 1,
		Meaning: map[uint64]string{
			0: "do not allow BitLocker without a compatible TPM",
			1: "allow BitLocker without a compatible TPM (password or startup key on USB)",
		},
	},
	{
		Field:   "UseTPM",
		Default: 1, Min: 0, Max: 2,
		Meaning: map[uint64]string{
			0: "do not allow TPM",
			1: "require TPM",
			2: "allow TPM",
		},
	},
	{
		Field:   "UseTPMPIN",
		Default: 0, Min: 0, Max: 2,
		Meaning: map[uint64]string{
			0: "do not allow startup PIN with TPM",
			1: "require startup PIN with TPM",
			2: "allow startup PIN with TPM",
		},
	},
	{
		Field:   "UseTPMKey",
		Default: 0, Min: 0, Max: 2,
		Meaning: map[uint64]string{
			0: "do not allow startup key with TPM",
			1: "require startup key with TPM",
			2: "allow startup key with TPM",
		},
	},
	{
		Field:   "UseTPMKeyPIN",
		Default: 0, Min: 0, Max: 2,
		Meaning: map[uint64]string{
			0: "do not allow startup key and PIN with TPM",
			1: "require startup key and PIN with TPM",
			2: "allow startup key and PIN with TPM",
		},
	},
}

// FVETables mengembalikan tabel FVE (read-only, jangan dimodifikasi).
func FVETables() []DecisionTable {
	return fveTables
}
