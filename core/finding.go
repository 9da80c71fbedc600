package core

import (
	"encoding/json"
	"fmt"
)

// Compliance adalah verdict tri-state untuk satu Finding.
// unknown dan not_applicable sama-sama "bukan verdict": unknown berarti
// state tidak bisa ditentukan, not_applicable berarti cek tidak berlaku
// (OS terlalu tua, atau murni informasional).
type Compliance string

const (
	Compliant     Compliance = "compliant"      // sesuai baseline
	NonCompliant  Compliance = "non_compliant"  // menyimpang dari baseline
	Unknown       Compliance = "unknown"        // tidak bisa ditentukan
	NotApplicable Compliance = "not_applicable" // cek tidak berlaku / info saja
)

// ValueKind menandai tipe nilai mentah yang dibaca.
type ValueKind int

const (
	KindInteger ValueKind = iota
	KindString
	KindBool
)

// NullSentinel dipakai untuk nilai yang tidak ada, supaya downstream bisa
// membedakan "dibaca tapi kosong" dari "tidak pernah dibaca".
const NullSentinel = "(null)"

// Value adalah nilai mentah opsional hasil pembacaan registry/API.
// Zero value = absent.
type Value struct {
	Present bool
	Kind    ValueKind
	Int     uint64
	Str     string
	Bool    bool
}

// Absent mengembalikan Value kosong (nilai tidak ada / gagal dibaca).
func Absent() Value { return Value{} }

// IntValue membungkus DWORD/QWORD registry.
func IntValue(v uint64) Value { return Value{Present: true, Kind: KindInteger, Int: v} }

// StrValue membungkus string registry.
func StrValue(v string) Value { return Value{Present: true, Kind: KindString, Str: v} }

// BoolValue membungkus hasil API boolean.
func BoolValue(v bool) Value { return Value{Present: true, Kind: KindBool, Bool: v} }

// String merender nilai; absent selalu jadi "(null)", bukan string kosong.
func (v Value) String() string {
	if !v.Present {
		return NullSentinel
	}
	switch v.Kind {
	case KindString:
		return v.Str
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	default:
		return fmt.Sprintf("%d", v.Int)
	}
}

// MarshalJSON: absent -> "(null)" string, present -> nilai aslinya.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Present {
		return json.Marshal(NullSentinel)
	}
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindBool:
		return json.Marshal(v.Bool)
	default:
		return json.Marshal(v.Int)
	}
}

// Finding adalah unit output universal dari satu titik keputusan.
// Description harus bisa diturunkan deterministik dari RawValue + decision
// table cek yang bersangkutan, tanpa state global tersembunyi.
type Finding struct {
	Subject     string     `json:"subject"`              // key path atau nama sintetis ("UEFI")
	FieldName   string     `json:"field_name,omitempty"` // nama value yang dibaca (kosong utk API)
	RawValue    Value      `json:"raw_value"`
	Description string     `json:"description"`
	Compliance  Compliance `json:"compliance"`
	Diagnostic  string     `json:"diagnostic,omitempty"` // kode error kolaborator, bukan bahan verdict
}

// NewFinding membuat Finding lengkap dalam satu panggilan.
func NewFinding(subject, field string, raw Value, desc string, c Compliance) Finding {
	return Finding{
		Subject:     subject,
		FieldName:   field,
		RawValue:    raw,
		Description: desc,
		Compliance:  c,
	}
}

// WorstCompliance meringkas beberapa Finding jadi satu verdict:
// ada non_compliant -> non_compliant; ada compliant (tanpa non_compliant)
// -> compliant; selain itu unknown/not_applicable.
func WorstCompliance(findings []Finding) Compliance {
	if len(findings) == 0 {
		return NotApplicable
	}
	verdict := NotApplicable
	for _, f := range findings {
		switch f.Compliance {
		case NonCompliant:
			return NonCompliant
		case Compliant:
			verdict = Compliant
		case Unknown:
			if verdict != Compliant {
				verdict = Unknown
			}
		}
	}
	return verdict
}
