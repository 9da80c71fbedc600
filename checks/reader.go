// Package checks berisi engine evaluasi compliance: decision logic murni
// di atas kontrak StateReader, tanpa I/O langsung, supaya bisa diuji di
// platform apa pun.
package checks

import "corp/winaudit/core"

// OSVersion adalah versi OS host (major/minor) untuk gating kapabilitas.
type OSVersion struct {
	Major uint32
	Minor uint32
}

// DeviceGuardInfo adalah hasil introspeksi Device Guard: daftar nama
// security service yang dikonfigurasi dan yang benar-benar berjalan.
type DeviceGuardInfo struct {
	Configured []string
	Running    []string
}

// StateReader adalah satu-satunya kolaborator eksternal engine.
// Semua method harus fail-fast: error akses apa pun dikembalikan sebagai
// absent/error, tidak pernah panic, tidak pernah retry.
type StateReader interface {
	// ReadValue membaca satu value registry di bawah HKLM.
	// Key/value tidak ada atau error akses -> Value absent, tanpa error.
	ReadValue(path, field string) core.Value

	// ReadFirmwareType membungkus query GetFirmwareType native.
	// Return: kode firmware (1=BIOS, 2=UEFI) atau error dengan kode win32.
	ReadFirmwareType() (uint32, error)

	// ProbeFirmwareVariable memanggil lookup firmware variable dengan nama
	// invalid yang sengaja; panggilan DIHARAPKAN gagal dan hanya kode
	// errornya yang dipakai. Return 0 kalau (tidak terduga) sukses.
	ProbeFirmwareVariable() uint32

	// DeviceGuard membungkus introspeksi host; error kalau layer
	// introspeksi tidak tersedia / versinya tidak memenuhi syarat.
	DeviceGuard() (DeviceGuardInfo, error)

	// OSVersion mengembalikan versi OS host.
	OSVersion() OSVersion
}

// Path registry yang dibaca engine (semua relatif terhadap HKLM).
const (
	PathPoliciesSystem = `SOFTWARE\Microsoft\Windows\CurrentVersion\Policies\System`
	PathLAPS           = `SOFTWARE\Policies\Microsoft Services\AdmPwd`
	PathSecureBoot     = `SYSTEM\CurrentControlSet\Control\SecureBoot\State`
	PathLsa            = `SYSTEM\CurrentControlSet\Control\Lsa`
	PathWDigest        = `SYSTEM\CurrentControlSet\Control\SecurityProviders\WDigest`
	PathTranscription  = `SOFTWARE\Policies\Microsoft\Windows\PowerShell\Transcription`
	PathProductOptions = `SYSTEM\CurrentControlSet\Control\ProductOptions`
	PathBitLockerState = `SYSTEM\CurrentControlSet\Control\BitLockerStatus`
	PathFVEPolicy      = `SOFTWARE\Policies\Microsoft\FVE`
)
