package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/anchore/distroglyph/distroglyph"
	"github.com/anchore/distroglyph/distroglyph/distro"
	"github.com/anchore/distroglyph/internal/config"
)

func stderrPrintLnf(message string, args ...interface{}) error {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	_, err := fmt.Fprintf(os.Stderr, message, args...)
	return err
}

func newResolver(cfg *config.Application, fs afero.Fs) (*distroglyph.Resolver, error) {
	return distroglyph.NewResolver(distroglyph.Config{
		CacheDir: cfg.Cache.Dir,
		Fs:       fs,
		Keyed:    cfg.Cache.Keyed,
	})
}

// hostDetector honors the configured distro override and os-release location.
func hostDetector(cfg *config.Application, fs afero.Fs) distro.Detector {
	var paths []string
	if cfg.OSRelease != "" {
		paths = append(paths, cfg.OSRelease)
	}
	return distro.NewHost(fs, cfg.Distro, paths...)
}

// distroName picks the name given on the command line, falling back to the host detector.
func distroName(cfg *config.Application, fs afero.Fs, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	name, err := hostDetector(cfg, fs).Name()
	if err != nil {
		return "", fmt.Errorf("failed to get distro name: %w", err)
	}
	return name, nil
}
