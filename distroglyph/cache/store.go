package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/anchore/distroglyph/distroglyph/glypherr"
	"github.com/anchore/distroglyph/internal/file"
	"github.com/anchore/distroglyph/internal/log"
)

const (
	// SlotName is the file holding the single cached glyph under the cache root.
	SlotName = "font_logo"

	// keyedDirName holds one file per normalized distro name when the Keyed layout is used.
	keyedDirName = SlotName + ".d"

	// maxSlotFileName keeps keyed slot names well under the common 255 byte file name limit. Longer names keep a
	// readable prefix and gain a digest of the full name.
	maxSlotFileName = 200
	slotPrefixLen   = 180
	slotDigestLen   = 16

	dirPermissions  os.FileMode = 0755
	filePermissions os.FileMode = 0644
)

// Layout selects how cached glyphs are laid out under the cache root.
type Layout int

const (
	// SingleSlot stores one glyph at <root>/font_logo regardless of the name that produced it. The cached value is
	// "this machine's answer" and goes stale if the host distro changes without clearing the cache.
	SingleSlot Layout = iota
	// Keyed stores one glyph per normalized name at <root>/font_logo.d/<name>.
	Keyed
)

func (l Layout) String() string {
	if l == Keyed {
		return "keyed"
	}
	return "single-slot"
}

// Record is a cached glyph along with where and when it was written.
type Record struct {
	Path    string
	Glyph   string
	ModTime time.Time
}

// Store reads and writes cached glyphs on an afero filesystem. There is no locking: concurrent writers of the same
// slot race and the last write wins.
type Store struct {
	fs     afero.Fs
	root   string
	layout Layout
}

func NewStore(fs afero.Fs, root string, layout Layout) *Store {
	return &Store{
		fs:     fs,
		root:   root,
		layout: layout,
	}
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Layout() Layout {
	return s.layout
}

// Path returns the file backing the slot for the given normalized name. With the SingleSlot layout the name is
// ignored.
func (s *Store) Path(name string) string {
	if s.layout == Keyed {
		return filepath.Join(s.root, keyedDirName, slotFileName(name))
	}
	return filepath.Join(s.root, SlotName)
}

// Read returns the cached glyph for the name. A missing slot is reported as found=false; every other filesystem
// failure is a CacheIO error.
func (s *Store) Read(name string) (string, bool, error) {
	r, err := s.Load(name)
	if err != nil || r == nil {
		return "", false, err
	}
	return r.Glyph, true, nil
}

// Load is Read with file metadata. It returns nil when the slot does not exist.
func (s *Store) Load(name string) (*Record, error) {
	path := s.Path(name)

	exists, err := file.Exists(s.fs, path)
	if err != nil {
		return nil, glypherr.NewCacheIO("check cache slot", path, err)
	}
	if !exists {
		log.Debugf("no cached glyph at %s", path)
		return nil, nil
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		return nil, glypherr.NewCacheIO("stat cache slot", path, err)
	}

	contents, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, glypherr.NewCacheIO("read cache slot", path, err)
	}

	return &Record{
		Path:    path,
		Glyph:   string(contents),
		ModTime: info.ModTime(),
	}, nil
}

// Write stores the glyph as the complete contents of the slot, creating parent directories as needed and
// overwriting anything already there.
func (s *Store) Write(name, glyph string) error {
	path := s.Path(name)

	if err := s.fs.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return glypherr.NewCacheIO("create cache directory", filepath.Dir(path), err)
	}

	if err := afero.WriteFile(s.fs, path, []byte(glyph), filePermissions); err != nil {
		return glypherr.NewCacheIO("write cache slot", path, err)
	}

	log.Debugf("cached glyph at %s", path)
	return nil
}

// slotFileName turns a normalized name into a single safe path element. Escaped names never contain ".", so the
// "." joining a truncated prefix to its digest cannot collide with a name that fits.
func slotFileName(name string) string {
	escaped := strings.ReplaceAll(url.PathEscape(name), ".", "%2E")
	if escaped == "" {
		return "_"
	}
	if len(escaped) <= maxSlotFileName {
		return escaped
	}

	prefix := escaped[:slotPrefixLen]
	// don't leave a partial %XX escape at the cut
	if i := strings.LastIndexByte(prefix, '%'); i >= 0 && i > len(prefix)-3 {
		prefix = prefix[:i]
	}
	sum := sha256.Sum256([]byte(name))
	return prefix + "." + hex.EncodeToString(sum[:])[:slotDigestLen]
}
