package distroglyph

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/anchore/distroglyph/distroglyph/cache"
	"github.com/anchore/distroglyph/distroglyph/distro"
	"github.com/anchore/distroglyph/distroglyph/glyph"
	"github.com/anchore/distroglyph/distroglyph/glypherr"
	"github.com/anchore/distroglyph/distroglyph/match"
	"github.com/anchore/distroglyph/internal/log"
)

// TableLoader provides the glyph table on a cache miss.
type TableLoader func() (*glyph.Table, error)

type Config struct {
	// CacheDir is the cache root; the slot lives directly beneath it.
	CacheDir string
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// Keyed caches one glyph per normalized name instead of a single slot for the machine.
	Keyed bool
	// Table defaults to the embedded Font Logos table.
	Table TableLoader
}

// Resolver turns distro names into glyphs, consulting the cache before matching and populating it afterwards.
type Resolver struct {
	store *cache.Store
	table TableLoader
}

func NewResolver(cfg Config) (*Resolver, error) {
	if cfg.CacheDir == "" {
		return nil, fmt.Errorf("no cache directory configured")
	}
	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	table := cfg.Table
	if table == nil {
		table = glyph.Default
	}
	layout := cache.SingleSlot
	if cfg.Keyed {
		layout = cache.Keyed
	}

	return &Resolver{
		store: cache.NewStore(fs, cfg.CacheDir, layout),
		table: table,
	}, nil
}

func (r *Resolver) Store() *cache.Store {
	return r.store
}

// Resolve returns the glyph for the raw distro name. A cached glyph is returned as-is without consulting the table
// or checking it against rawName.
//
// When matching succeeds but the cache cannot be written, both the glyph and a CacheIO error are returned; the
// caller decides whether to use the glyph anyway.
func (r *Resolver) Resolve(rawName string) (string, error) {
	name := match.Normalize(rawName)

	cached, found, err := r.store.Read(name)
	if err != nil {
		return "", annotate(err, rawName)
	}
	if found {
		log.Debugf("using cached glyph from %s", r.store.Path(name))
		return cached, nil
	}

	result, err := r.Match(rawName)
	if err != nil {
		return "", err
	}

	if err := r.store.Write(name, result.Entry.Glyph); err != nil {
		return result.Entry.Glyph, annotate(err, rawName)
	}
	return result.Entry.Glyph, nil
}

// Match runs the fuzzy matcher against the table, bypassing the cache entirely.
func (r *Resolver) Match(rawName string) (match.Result, error) {
	table, err := r.table()
	if err != nil {
		var gerr *glypherr.Error
		if errors.As(err, &gerr) {
			return match.Result{}, err
		}
		return match.Result{}, glypherr.NewDataCorruption("load glyph table", err)
	}
	if table == nil {
		return match.Result{}, glypherr.NewDataCorruption("load glyph table", fmt.Errorf("no table available"))
	}

	result, err := match.Match(table, rawName)
	if err != nil {
		return match.Result{}, err
	}

	log.Debugf("matched distro %q to %q via %s rule", rawName, result.Entry.Name, result.Rule)
	return result, nil
}

// ResolveHost resolves the name reported by the detector.
func (r *Resolver) ResolveHost(d distro.Detector) (string, error) {
	name, err := d.Name()
	if err != nil {
		return "", fmt.Errorf("failed to get distro name: %w", err)
	}
	return r.Resolve(name)
}

func annotate(err error, rawName string) error {
	var gerr *glypherr.Error
	if errors.As(err, &gerr) {
		return gerr.WithInput(rawName)
	}
	return err
}
