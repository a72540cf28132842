package glyph

import (
	_ "embed"
	"sync"
)

// fontLogos is the Font Logos name table baked into the build. Supporting a new distro means updating this file
// and rebuilding.
//
//go:embed fontlogos.json
var fontLogos []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the embedded table. It is parsed once per process and shared; callers must treat it as read-only.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = NewTable(fontLogos)
	})
	return defaultTable, defaultErr
}
