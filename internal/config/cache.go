package config

import (
	"fmt"
	"path"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/anchore/distroglyph/internal"
)

type cache struct {
	Dir   string `yaml:"dir" json:"dir" mapstructure:"dir"`       // the cache root; the glyph slot lives directly beneath it
	Keyed bool   `yaml:"keyed" json:"keyed" mapstructure:"keyed"` // cache one glyph per distro name instead of one per machine
}

func (cfg cache) loadDefaultValues(v *viper.Viper) {
	// e.g. ~/.cache/distroglyph
	v.SetDefault("cache.dir", path.Join(xdg.CacheHome, internal.ApplicationName))
	v.SetDefault("cache.keyed", false)
}

func (cfg *cache) parseConfigValues() error {
	if cfg.Dir == "" {
		return fmt.Errorf("cache.dir must not be empty")
	}
	dir, err := homedir.Expand(cfg.Dir)
	if err != nil {
		return fmt.Errorf("unable to expand cache.dir=%q: %w", cfg.Dir, err)
	}
	cfg.Dir = dir
	return nil
}
