//go:build windows
// +build windows

package main

import (
	"fmt"
	"unsafe"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"corp/winaudit/checks"
	"corp/winaudit/core"
)

// liveReader adalah StateReader produksi: registry HKLM (read-only),
// syscall kernel32, dan WMI Device Guard. Semua kegagalan baca diturunkan
// ke absent/error sesuai kontrak checks.StateReader.
type liveReader struct{}

func newLiveReader() *liveReader { return &liveReader{} }

var (
	kernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	procGetFirmwareType         = kernel32.NewProc("GetFirmwareType")
	procGetFirmwareEnvVariableW = kernel32.NewProc("GetFirmwareEnvironmentVariableW")
)

// ReadValue membuka key HKLM dengan hak QUERY_VALUE lalu coba baca sebagai
// DWORD/QWORD dulu, fallback ke string. Key/value tidak ada = absent.
func (lr *liveReader) ReadValue(path, field string) core.Value {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return core.Absent()
	}
	defer k.Close() // pastikan ditutup

	if v, _, err := k.GetIntegerValue(field); err == nil {
		return core.IntValue(v)
	}
	if s, _, err := k.GetStringValue(field); err == nil {
		return core.StrValue(s)
	}
	return core.Absent()
}

// ReadFirmwareType memanggil GetFirmwareType sekali.
func (lr *liveReader) ReadFirmwareType() (uint32, error) {
	var ft uint32
	ret, _, callErr := procGetFirmwareType.Call(uintptr(unsafe.Pointer(&ft)))
	if ret == 0 {
		return 0, fmt.Errorf("GetFirmwareType: %v", callErr)
	}
	return ft, nil
}

// ProbeFirmwareVariable: nama kosong + GUID nol, panggilan diharapkan
// gagal; hanya kode errornya yang dipakai pemanggil. Return 0 kalau
// (di luar dugaan) sukses.
func (lr *liveReader) ProbeFirmwareVariable() uint32 {
	name, _ := windows.UTF16PtrFromString("")
	guid, _ := windows.UTF16PtrFromString("{00000000-0000-0000-0000-000000000000}")

	ret, _, callErr := procGetFirmwareEnvVariableW.Call(
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(guid)),
		0,
		0,
	)
	if ret != 0 {
		return 0
	}
	if errno, ok := callErr.(windows.Errno); ok {
		return uint32(errno)
	}
	return 0
}

// wmi class: Win32_DeviceGuard (namespace root\Microsoft\Windows\DeviceGuard)
type wmiDeviceGuard struct {
	SecurityServicesConfigured *[]int32
	SecurityServicesRunning    *[]int32
}

// kode service Device Guard -> nama
var deviceGuardServiceNames = map[int32]string{
	1: checks.CredentialGuardService,
	2: "HVCI",
}

// DeviceGuard query WMI; error kalau namespace/class tidak tersedia
// (OS lama atau layer introspeksi tidak memenuhi syarat versi).
func (lr *liveReader) DeviceGuard() (checks.DeviceGuardInfo, error) {
	var rows []wmiDeviceGuard
	err := wmi.QueryNamespace(
		`SELECT SecurityServicesConfigured,SecurityServicesRunning FROM Win32_DeviceGuard`,
		&rows, `root\Microsoft\Windows\DeviceGuard`,
	)
	if err != nil {
		return checks.DeviceGuardInfo{}, err
	}
	if len(rows) == 0 {
		return checks.DeviceGuardInfo{}, fmt.Errorf("Win32_DeviceGuard returned no rows")
	}

	return checks.DeviceGuardInfo{
		Configured: serviceNames(rows[0].SecurityServicesConfigured),
		Running:    serviceNames(rows[0].SecurityServicesRunning),
	}, nil
}

// serviceNames: deref *[]int32 -> nama service; kode tak dikenal disajikan
// mentah sebagai "service_<kode>".
func serviceNames(codes *[]int32) []string {
	if codes == nil {
		return nil
	}
	out := make([]string, 0, len(*codes))
	for _, c := range *codes {
		if name, ok := deviceGuardServiceNames[c]; ok {
			out = append(out, name)
			continue
		}
		out = append(out, fmt.Sprintf("service_%d", c))
	}
	return out
}

// OSVersion via RtlGetVersion (tidak kena compatibility shim manifest).
func (lr *liveReader) OSVersion() checks.OSVersion {
	info := windows.RtlGetVersion()
	return checks.OSVersion{
		Major: info.MajorVersion,
		Minor: info.MinorVersion,
	}
}

// osVersionString untuk metadata laporan.
func osVersionString(v checks.OSVersion) string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// isAdmin: apakah proses saat ini member Administrators (untuk metadata
// laporan saja; semua cek jalan tanpa elevation).
func isAdmin() bool {
	var tok windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &tok); err != nil {
		return false
	}
	defer tok.Close()

	var sid *windows.SID
	_ = windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&sid,
	)
	if sid == nil {
		return false
	}
	defer windows.FreeSid(sid)

	member, err := tok.IsMember(sid)
	return err == nil && member
}
