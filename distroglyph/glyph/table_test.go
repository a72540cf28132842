package glyph

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchore/distroglyph/distroglyph/glypherr"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantKeys []string
		wantErr  require.ErrorAssertionFunc
	}{
		{
			name:     "keys are lower-cased",
			data:     `{"Red Hat":"R","Arch":"A","fedora":"F"}`,
			wantKeys: []string{"arch", "fedora", "red hat"},
		},
		{
			name:     "unicode keys are folded",
			data:     `{"ÉLÉMENTAIRE":"E"}`,
			wantKeys: []string{"élémentaire"},
		},
		{
			name:    "malformed json",
			data:    `{"Arch": "A",`,
			wantErr: require.Error,
		},
		{
			name:    "non-string glyph",
			data:    `{"Arch": 1}`,
			wantErr: require.Error,
		},
		{
			name:    "empty object",
			data:    `{}`,
			wantErr: require.Error,
		},
		{
			name:    "keys collide after folding",
			data:    `{"Arch":"A","ARCH":"B"}`,
			wantErr: require.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == nil {
				tt.wantErr = require.NoError
			}
			table, err := NewTable([]byte(tt.data))
			tt.wantErr(t, err)
			if err != nil {
				assert.True(t, errors.Is(err, glypherr.ErrDataCorruption), "expected data corruption, got %v", err)
				return
			}
			if d := cmp.Diff(tt.wantKeys, table.Keys()); d != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestTable_LookupKeepsGlyphAndName(t *testing.T) {
	table, err := NewTable([]byte(`{"Red Hat":"\uf316"}`))
	require.NoError(t, err)

	e, ok := table.Lookup("red hat")
	require.True(t, ok)
	assert.Equal(t, Entry{Key: "red hat", Name: "Red Hat", Glyph: "\uf316"}, e)

	_, ok = table.Lookup("Red Hat")
	assert.False(t, ok, "lookups take canonical keys only")
}

func TestTable_ReadOnlyAccessors(t *testing.T) {
	table, err := NewTable([]byte(`{"B":"2","A":"1"}`))
	require.NoError(t, err)

	keys := table.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, table.Keys())

	entries := table.Entries()
	entries[0].Glyph = "mutated"
	e, _ := table.Lookup("a")
	assert.Equal(t, "1", e.Glyph)
	assert.Equal(t, 2, table.Len())
}

func TestTable_NilIsEmpty(t *testing.T) {
	var table *Table
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Keys())
	_, ok := table.Lookup("arch")
	assert.False(t, ok)
}

func TestDefault(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, table, again)

	for key, glyph := range map[string]string{
		"arch":     "\uf303",
		"archlabs": "\uf31e",
		"fedora":   "\uf30a",
		"ubuntu":   "\uf31b",
		"debian":   "\uf306",
		"red hat":  "\uf316",
		"nixos":    "\uf313",
		"windows":  "\ue62a",
	} {
		e, ok := table.Lookup(key)
		if assert.True(t, ok, "missing key %q", key) {
			assert.Equal(t, glyph, e.Glyph, "glyph for %q", key)
		}
	}

	for _, k := range table.Keys() {
		assert.Equal(t, FoldKey(k), k, "key %q is not canonical", k)
	}
}
