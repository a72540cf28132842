package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/anchore/distroglyph/distroglyph/cache"
	"github.com/anchore/distroglyph/distroglyph/match"
	"github.com/anchore/distroglyph/internal/config"
)

var cacheShowCmd = &cobra.Command{
	Use:   "show [NAME]",
	Short: "show the cached glyph and where it is stored",
	Long: `Shows the cached glyph. NAME only matters with a keyed cache; otherwise the
single cache slot is shown. The cache is never cleared by this tool: delete the
file to force the glyph to be resolved again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return presentCache(cmd.OutOrStdout(), appConfig, afero.NewOsFs(), args, time.Now())
	},
}

func init() {
	cacheCmd.AddCommand(cacheShowCmd)
}

func presentCache(out io.Writer, cfg *config.Application, fs afero.Fs, args []string, now time.Time) error {
	layout := cache.SingleSlot
	var name string
	if cfg.Cache.Keyed {
		layout = cache.Keyed
		n, err := distroName(cfg, fs, args)
		if err != nil {
			return err
		}
		name = match.Normalize(n)
	}

	store := cache.NewStore(fs, cfg.Cache.Dir, layout)
	rec, err := store.Load(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Layout:   %s\n", layout)
	fmt.Fprintf(out, "Location: %s\n", store.Path(name))
	if rec == nil {
		fmt.Fprintln(out, "Status:   not cached")
		return nil
	}
	fmt.Fprintf(out, "Glyph:    %s\n", rec.Glyph)
	fmt.Fprintf(out, "Written:  %s\n", humanize.RelTime(rec.ModTime, now, "ago", "from now"))
	return nil
}
