package checks

import (
	"errors"

	"corp/winaudit/core"
)

// fakeReader adalah StateReader in-memory untuk test. Selain menyimpan
// nilai, ia mencatat panggilan kolaborator supaya test bisa memastikan
// gating (mis. "API tidak boleh dipanggil di OS lama").
type fakeReader struct {
	version OSVersion
	values  map[string]core.Value

	firmwareCode uint32
	firmwareErr  error
	probeCode    uint32

	guard    DeviceGuardInfo
	guardErr error

	firmwareCalls int
	probeCalls    int
	guardCalls    int
	readCalls     []string
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		version: OSVersion{Major: 10, Minor: 0},
		values:  make(map[string]core.Value),
	}
}

func (f *fakeReader) set(path, field string, v core.Value) {
	f.values[path+`\`+field] = v
}

func (f *fakeReader) ReadValue(path, field string) core.Value {
	f.readCalls = append(f.readCalls, path+`\`+field)
	if v, ok := f.values[path+`\`+field]; ok {
		return v
	}
	return core.Absent()
}

func (f *fakeReader) ReadFirmwareType() (uint32, error) {
	f.firmwareCalls++
	return f.firmwareCode, f.firmwareErr
}

func (f *fakeReader) ProbeFirmwareVariable() uint32 {
	f.probeCalls++
	return f.probeCode
}

func (f *fakeReader) DeviceGuard() (DeviceGuardInfo, error) {
	f.guardCalls++
	return f.guard, f.guardErr
}

func (f *fakeReader) OSVersion() OSVersion { return f.version }

var errIntrospection = errors.New("introspection layer unavailable")
