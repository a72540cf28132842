package glyph

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/scylladb/go-set/strset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/anchore/distroglyph/distroglyph/glypherr"
)

// Entry is a single row of the glyph table.
type Entry struct {
	// Key is the canonical (lower-cased) form of Name.
	Key string
	// Name is the display name as it appears in the source data (e.g. "Red Hat").
	Name string
	// Glyph is the icon font codepoint; it is opaque to this package.
	Glyph string
}

// Table is an immutable mapping of canonical keys to glyphs. The zero value is an empty table.
type Table struct {
	entries map[string]Entry
	keys    []string
}

// FoldKey returns the canonical form of a display name.
func FoldKey(name string) string {
	return cases.Lower(language.Und).String(name)
}

// NewTable parses a JSON object of display name to glyph string. Keys are case-folded; glyphs are kept as-is.
func NewTable(data []byte) (*Table, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, glypherr.NewDataCorruption("parse glyph table", err)
	}
	if len(raw) == 0 {
		return nil, glypherr.NewDataCorruption("parse glyph table", fmt.Errorf("no entries"))
	}

	// iterate display names in a fixed order so that a collision always reports the same pair
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := strset.New()
	t := &Table{
		entries: make(map[string]Entry, len(raw)),
		keys:    make([]string, 0, len(raw)),
	}
	for _, name := range names {
		key := FoldKey(name)
		if seen.Has(key) {
			return nil, glypherr.NewDataCorruption("parse glyph table",
				fmt.Errorf("display names %q and %q fold to the same key %q", t.entries[key].Name, name, key))
		}
		seen.Add(key)
		t.entries[key] = Entry{Key: key, Name: name, Glyph: raw[name]}
		t.keys = append(t.keys, key)
	}
	sort.Strings(t.keys)

	return t, nil
}

// Lookup returns the entry for the given canonical key.
func (t *Table) Lookup(key string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.entries[key]
	return e, ok
}

// Keys returns all canonical keys in ascending order. The returned slice is a copy.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Entries returns all entries ordered by key.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, 0, len(t.keys))
	for _, k := range t.keys {
		entries = append(entries, t.entries[k])
	}
	return entries
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}
