//go:build windows
// +build windows

package main

import (
	"context"

	"corp/winaudit/checks"
	"corp/winaudit/core"
)

// CheckWrapper mengadaptasi fungsi engine ke interface core.Check.
type CheckWrapper struct {
	id       string
	name     string
	category string
	reader   checks.StateReader
	fn       func(checks.StateReader) []core.Finding
}

func (c *CheckWrapper) ID() string       { return c.id }
func (c *CheckWrapper) Name() string     { return c.name }
func (c *CheckWrapper) Category() string { return c.category }

func (c *CheckWrapper) Run(_ context.Context) []core.Finding {
	return c.fn(c.reader)
}

func wrap(id, name, category string, r checks.StateReader, fn func(checks.StateReader) []core.Finding) core.Check {
	return &CheckWrapper{id: id, name: name, category: category, reader: r, fn: fn}
}

// allChecks mendaftarkan katalog cek lengkap dengan reader yang diberikan.
func allChecks(r checks.StateReader) []core.Check {
	return []core.Check{
		wrap("W-001", "UAC Configuration", "account_protection", r, checks.CheckUAC),
		wrap("W-002", "BitLocker Startup Authentication", "disk_encryption", r, checks.CheckBitLocker),
		wrap("W-003", "LAPS", "credential_access", r, checks.CheckLAPS),
		wrap("W-004", "Secure Boot", "boot_integrity", r, checks.CheckSecureBoot),
		wrap("W-005", "Firmware Mode", "boot_integrity", r, checks.CheckFirmwareMode),
		wrap("W-006", "LSA Protection (RunAsPPL)", "credential_access", r, checks.CheckRunAsPPL),
		wrap("W-007", "Credential Guard", "credential_access", r, checks.CheckCredentialGuard),
		wrap("W-008", "PowerShell Transcription", "logging", r, checks.CheckTranscription),
		wrap("W-009", "WDigest Credential Caching", "credential_access", r, checks.CheckWDigest),
	}
}

// allCheckIDs urut untuk fallback "jalankan semua".
func allCheckIDs() []string {
	return []string{"W-001", "W-002", "W-003", "W-004", "W-005", "W-006", "W-007", "W-008", "W-009"}
}
