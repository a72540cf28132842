package cmd

import (
	"errors"
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/anchore/distroglyph/distroglyph/glypherr"
	"github.com/anchore/distroglyph/internal"
	"github.com/anchore/distroglyph/internal/config"
	"github.com/anchore/distroglyph/internal/log"
	"github.com/anchore/distroglyph/internal/stringutil"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [NAME]", internal.ApplicationName),
	Short: "Print the font logo glyph for a distro",
	Long: stringutil.Tprintf(`Resolves a distro name to its glyph in the Font Logos icon font ({{.fontLogosURL}}).

With no NAME the host distro is detected from os-release (or the platform). The
resolved glyph is cached, so later runs print it without matching again:
    {{.appName}}                          glyph for this machine
    {{.appName}} "Arch Linux"             glyph for a given name
    {{.appName}} --cache-dir /tmp/glyph   use another cache root
`, map[string]interface{}{
		"appName":      internal.ApplicationName,
		"fontLogosURL": internal.FontLogosURL,
	}),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if appConfig.Dev.ProfileCPU {
			defer profile.Start(profile.CPUProfile).Stop()
		} else if appConfig.Dev.ProfileMem {
			defer profile.Start(profile.MemProfile).Stop()
		}

		glyph, err := resolveGlyph(appConfig, afero.NewOsFs(), args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), glyph)
		return err
	},
}

func init() {
	setCliOptions()
}

// resolveGlyph runs the full pipeline. A cache write failure after a successful match is logged and the glyph is
// still returned; any other failure is fatal.
func resolveGlyph(cfg *config.Application, fs afero.Fs, args []string) (string, error) {
	name, err := distroName(cfg, fs, args)
	if err != nil {
		return "", err
	}

	resolver, err := newResolver(cfg, fs)
	if err != nil {
		return "", err
	}

	glyph, err := resolver.Resolve(name)
	if err != nil {
		if glyph != "" && errors.Is(err, glypherr.ErrCacheIO) {
			log.Warnf("unable to cache glyph: %+v", err)
			return glyph, nil
		}
		return "", err
	}
	return glyph, nil
}
