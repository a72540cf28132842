package distro

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/afero"
)

// goosNames covers platforms without an os-release file. The names are table display names.
var goosNames = map[string]string{
	"darwin":  "Apple",
	"ios":     "Apple",
	"windows": "Windows",
	"freebsd": "FreeBSD",
	"openbsd": "OpenBSD",
	"illumos": "illumos",
	"solaris": "illumos",
	"android": "Tux",
}

// Host detects the name of the machine we are running on.
type Host struct {
	// Override, when set, is returned as-is.
	Override string
	// GOOS defaults to runtime.GOOS.
	GOOS      string
	OSRelease *OSRelease
}

// NewHost builds a Host detector reading os-release files from fs.
func NewHost(fs afero.Fs, override string, osReleasePaths ...string) *Host {
	return &Host{
		Override:  override,
		GOOS:      runtime.GOOS,
		OSRelease: NewOSRelease(fs, osReleasePaths...),
	}
}

func (h *Host) Name() (string, error) {
	if strings.TrimSpace(h.Override) != "" {
		return h.Override, nil
	}

	goos := h.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	if h.OSRelease != nil {
		name, err := h.OSRelease.Name()
		if err == nil {
			return name, nil
		}
		if goos == "linux" {
			return "", err
		}
	}

	if name, ok := goosNames[goos]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: unsupported platform %q", ErrUnknown, goos)
}
