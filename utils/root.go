package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ProjectRoot returns the parent of the directory holding the running
// executable. A binary built into <project>/tools/ therefore works on <project>.
func ProjectRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "locating executable")
	}
	return RootFromExecutable(exe)
}

// RootFromExecutable is ProjectRoot for a given executable path.
func RootFromExecutable(exe string) (string, error) {
	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", exe)
	}
	return filepath.Dir(filepath.Dir(abs)), nil
}
