package catgets

import (
	"io/ioutil"
	"os"
	"runtime"
)

// fileMapping gives the catalog parser the whole file contents as a
// byte slice, memory mapped where the platform allows it.
type fileMapping struct {
	data []byte

	isMapped bool
}

func (m *fileMapping) Close() error {
	runtime.SetFinalizer(m, nil)
	if !m.isMapped {
		return nil
	}
	return m.closeMapping()
}

func openMapping(f *os.File) (*fileMapping, error) {
	m := new(fileMapping)

	err := m.tryMap(f)
	if err == nil {
		runtime.SetFinalizer(m, (*fileMapping).Close)
		return m, nil
	}
	// On mapping failure, fall back to reading the file into
	// memory directly.  The mapping attempt never reads from f,
	// so the offset is still at the start.
	m.data, err = ioutil.ReadAll(f)
	return m, err
}
