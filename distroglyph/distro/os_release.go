package distro

import (
	"fmt"
	"io"

	"github.com/acobaugh/osrelease"
	"github.com/spf13/afero"

	"github.com/anchore/distroglyph/internal/file"
	"github.com/anchore/distroglyph/internal/log"
)

// DefaultOSReleasePaths are tried in order, per os-release(5).
var DefaultOSReleasePaths = []string{osrelease.EtcOsRelease, osrelease.UsrLibOsRelease}

// OSRelease detects the distro name from an os-release file.
type OSRelease struct {
	fs    afero.Fs
	paths []string
}

// NewOSRelease creates a detector reading the first existing path; with no paths the os-release(5) defaults are used.
func NewOSRelease(fs afero.Fs, paths ...string) *OSRelease {
	if len(paths) == 0 {
		paths = DefaultOSReleasePaths
	}
	return &OSRelease{
		fs:    fs,
		paths: paths,
	}
}

// Release returns the parsed key/value pairs of the first os-release file found, along with its path.
func (o *OSRelease) Release() (map[string]string, string, error) {
	for _, path := range o.paths {
		exists, err := file.Exists(o.fs, path)
		if err != nil {
			return nil, path, fmt.Errorf("unable to check os-release file: %w", err)
		}
		if !exists {
			continue
		}

		release, err := o.read(path)
		return release, path, err
	}
	return nil, "", fmt.Errorf("%w: no os-release file found (tried %v)", ErrUnknown, o.paths)
}

func (o *OSRelease) read(path string) (map[string]string, error) {
	f, err := o.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open os-release file %q: %w", path, err)
	}
	defer log.CloseAndLogError(f, path)

	contents, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("unable to read os-release file %q: %w", path, err)
	}

	release, err := osrelease.ReadString(string(contents))
	if err != nil {
		return nil, fmt.Errorf("unable to parse os-release file %q: %w", path, err)
	}
	return release, nil
}

// Name prefers PRETTY_NAME, then NAME, then ID.
func (o *OSRelease) Name() (string, error) {
	release, path, err := o.Release()
	if err != nil {
		return "", err
	}

	for _, field := range []string{"PRETTY_NAME", "NAME", "ID"} {
		if v := release[field]; v != "" {
			log.Debugf("distro name from %s (%s): %q", path, field, v)
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %s has no PRETTY_NAME, NAME or ID", ErrUnknown, path)
}
