package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/anchore/distroglyph/internal/config"
)

var cliOpts = config.CliOnlyOptions{}

func setCliOptions() {
	rootCmd.PersistentFlags().StringVarP(&cliOpts.ConfigPath, "config", "c", "", "application config file")
	rootCmd.PersistentFlags().CountVarP(&cliOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")

	flags := rootCmd.PersistentFlags()

	flags.BoolP(
		"quiet", "q", false,
		"suppress all logging output",
	)

	flags.StringP(
		"distro", "d", "",
		"resolve this distro name instead of detecting the host distro",
	)

	flags.StringP(
		"cache-dir", "", "",
		"directory holding the cached glyph",
	)

	flags.BoolP(
		"keyed", "", false,
		"cache one glyph per distro name instead of one per machine",
	)

	flags.StringP(
		"os-release", "", "",
		"read the host distro name from this os-release file",
	)

	if err := bindConfigOptions(flags); err != nil {
		fmt.Printf("unable to bind flags: %+v", err)
		os.Exit(1)
	}
}

// bindConfigOptions maps flags onto their (possibly nested) config keys.
func bindConfigOptions(flags *pflag.FlagSet) error {
	for key, flag := range map[string]string{
		"quiet":       "quiet",
		"distro":      "distro",
		"cache.dir":   "cache-dir",
		"cache.keyed": "keyed",
		"os-release":  "os-release",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("unable to bind flag '%s': %w", flag, err)
		}
	}
	return nil
}
