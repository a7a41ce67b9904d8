package utils

import (
	"os"
	"path/filepath"
)

// EnsureDataDir creates the directory holding the given path if it doesn't
// exist. Used for the flat-file and badger store locations.
func EnsureDataDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), os.ModePerm)
}
