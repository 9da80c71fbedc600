package checks

// Resolver kapabilitas OS: satu method per fitur version-gated.
// Threshold persis mengikuti kebijakan Windows:
//   - GetFirmwareType ada sejak Windows 8 / Server 2012 (6.2)
//   - probe firmware variable hanya relevan di Windows 7 / 2008 R2 (6.1)
//   - RunAsPPL sejak Windows 8.1 / Server 2012 R2 (6.3)
//   - Credential Guard sejak Windows 10

// SupportsFirmwareTypeAPI: query GetFirmwareType tersedia.
func (v OSVersion) SupportsFirmwareTypeAPI() bool {
	return v.Major >= 10 || (v.Major == 6 && v.Minor >= 2)
}

// SupportsFirmwareProbe: fallback probe firmware variable berlaku.
func (v OSVersion) SupportsFirmwareProbe() bool {
	return v.Major == 6 && v.Minor == 1
}

// SupportsRunAsPPL: proteksi LSA (RunAsPPL) dikenal OS ini.
func (v OSVersion) SupportsRunAsPPL() bool {
	return v.Major >= 10 || (v.Major == 6 && v.Minor >= 3)
}

// SupportsCredentialGuard: Credential Guard dikenal OS ini.
func (v OSVersion) SupportsCredentialGuard() bool {
	return v.Major >= 10
}
