//go:build windows
// +build windows

package catgets

import (
	"errors"
	"os"
)

// Catalog files are small; on Windows openMapping just takes the
// read-into-memory fallback.
func (m *fileMapping) tryMap(f *os.File) error {
	return errors.New("file mapping not supported")
}

func (m *fileMapping) closeMapping() error {
	return nil
}
