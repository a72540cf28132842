package file

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// ErrIsDir is returned by Exists when a directory occupies the path of an expected regular file.
var ErrIsDir = errors.New("path is a directory")

// Exists reports whether a regular file is present at path. A missing path is not an error; any other stat failure is.
func Exists(fs afero.Fs, path string) (bool, error) {
	info, err := fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%w: %s", ErrIsDir, path)
	}
	return true, nil
}
