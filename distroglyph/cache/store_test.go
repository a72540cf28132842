package cache

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchore/distroglyph/distroglyph/glypherr"
)

// unreadableFs fails every open, simulating a slot the process may not read.
type unreadableFs struct {
	afero.Fs
}

func (u unreadableFs) Open(name string) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
}

func TestStore_Path(t *testing.T) {
	single := NewStore(afero.NewMemMapFs(), "/cache", SingleSlot)
	assert.Equal(t, filepath.Join("/cache", "font_logo"), single.Path("ubuntu"))
	assert.Equal(t, single.Path("ubuntu"), single.Path("fedora"), "single slot ignores the name")

	keyed := NewStore(afero.NewMemMapFs(), "/cache", Keyed)
	tests := []struct {
		name string
		want string
	}{
		{name: "ubuntu 22.04", want: "ubuntu%2022%2E04"},
		{name: "debian gnu/linux", want: "debian%20gnu%2Flinux"},
		{name: "..", want: "%2E%2E"},
		{name: "", want: "_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.Join("/cache", "font_logo.d", tt.want), keyed.Path(tt.name))
		})
	}
}

func TestStore_LongKeyedName(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), "/cache", Keyed)

	long := "arch linux " + strings.Repeat("x", 300)
	other := "arch linux " + strings.Repeat("x", 299) + "y"

	base := filepath.Base(s.Path(long))
	assert.LessOrEqual(t, len(base), 255)
	assert.True(t, strings.HasPrefix(base, "arch%20linux%20xxx"), "readable prefix kept: %s", base)
	assert.NotEqual(t, s.Path(long), s.Path(other), "names sharing a prefix get distinct slots")

	require.NoError(t, s.Write(long, "A"))
	glyph, found, err := s.Read(long)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "A", glyph)

	_, found, err = s.Read(other)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSlotFileName_TruncationKeepsWholeEscapes(t *testing.T) {
	// each space escapes to three bytes, so some cut lands inside an escape
	for pad := 0; pad < 3; pad++ {
		name := strings.Repeat("a", pad) + strings.Repeat(" ", 100)
		got := slotFileName(name)
		prefix := got[:strings.LastIndexByte(got, '.')]
		assert.LessOrEqual(t, len(got), maxSlotFileName)
		assert.Equal(t, 0, (len(prefix)-pad)%3, "prefix %q ends inside an escape", prefix)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for _, layout := range []Layout{SingleSlot, Keyed} {
		t.Run(layout.String(), func(t *testing.T) {
			fs := afero.NewMemMapFs()
			s := NewStore(fs, "/home/user/.cache/distroglyph", layout)

			_, found, err := s.Read("fedora")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, s.Write("fedora", "F"))

			contents, err := afero.ReadFile(fs, s.Path("fedora"))
			require.NoError(t, err)
			assert.Equal(t, "F", string(contents), "slot holds the raw glyph with no envelope")

			glyph, found, err := s.Read("fedora")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "F", glyph)

			rec, err := s.Load("fedora")
			require.NoError(t, err)
			require.NotNil(t, rec)
			assert.Equal(t, s.Path("fedora"), rec.Path)
			assert.False(t, rec.ModTime.IsZero())
		})
	}
}

func TestStore_WriteOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewStore(fs, "/cache", SingleSlot)

	require.NoError(t, s.Write("arch", "a much longer previous value"))
	require.NoError(t, s.Write("arch", "A"))

	glyph, found, err := s.Read("arch")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "A", glyph)
}

func TestStore_KeyedSlotsAreIndependent(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), "/cache", Keyed)

	require.NoError(t, s.Write("ubuntu", "U"))
	_, found, err := s.Read("fedora")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_Failures(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T) error
	}{
		{
			name: "cache root cannot be created",
			run: func(t *testing.T) error {
				s := NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/cache", SingleSlot)
				return s.Write("fedora", "F")
			},
		},
		{
			name: "slot cannot be opened",
			run: func(t *testing.T) error {
				fs := afero.NewMemMapFs()
				require.NoError(t, afero.WriteFile(fs, "/cache/font_logo", []byte("F"), 0644))
				_, _, err := NewStore(unreadableFs{Fs: fs}, "/cache", SingleSlot).Read("fedora")
				return err
			},
		},
		{
			name: "directory occupies the slot",
			run: func(t *testing.T) error {
				fs := afero.NewMemMapFs()
				require.NoError(t, fs.MkdirAll("/cache/font_logo", 0755))
				_, _, err := NewStore(fs, "/cache", SingleSlot).Read("fedora")
				return err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(t)
			require.Error(t, err)
			assert.True(t, errors.Is(err, glypherr.ErrCacheIO), "expected cache io error, got %v", err)
			assert.False(t, errors.Is(err, glypherr.ErrNoMatch))

			var gerr *glypherr.Error
			require.True(t, errors.As(err, &gerr))
			assert.NotEmpty(t, gerr.Path)
			assert.NotNil(t, errors.Unwrap(err), "underlying os error is chained")
		})
	}
}
