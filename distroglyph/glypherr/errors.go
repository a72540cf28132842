package glypherr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a resolution failure so callers can branch on it.
type Kind int

const (
	// DataCorruption indicates the glyph table could not be built from its source data. This is a build
	// defect rather than a runtime condition.
	DataCorruption Kind = iota + 1

	// CacheIO indicates a filesystem failure while touching the cache slot (read, directory creation or write).
	CacheIO

	// NoMatch indicates that no table key matched the given name under any matching rule.
	NoMatch
)

func (k Kind) String() string {
	switch k {
	case DataCorruption:
		return "data corruption"
	case CacheIO:
		return "cache io"
	case NoMatch:
		return "no match"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

var (
	// ErrDataCorruption matches any Error of kind DataCorruption via errors.Is.
	ErrDataCorruption = &Error{Kind: DataCorruption}

	// ErrCacheIO matches any Error of kind CacheIO via errors.Is.
	ErrCacheIO = &Error{Kind: CacheIO}

	// ErrNoMatch matches any Error of kind NoMatch via errors.Is.
	ErrNoMatch = &Error{Kind: NoMatch}
)

// Error is the single error type produced by the resolution pipeline. It carries the failure kind along with
// whatever context was available at the failure site.
type Error struct {
	Kind Kind
	// Op is a short description of the operation that failed (e.g. "read cache slot").
	Op string
	// Input is the raw, non-normalized distro name that was being resolved.
	Input string
	// Path is the filesystem path involved, if any.
	Path string
	// Reference points the user at where supported names are documented.
	Reference string
	Err       error
}

func NewDataCorruption(op string, err error) *Error {
	return &Error{Kind: DataCorruption, Op: op, Err: err}
}

func NewCacheIO(op, path string, err error) *Error {
	return &Error{Kind: CacheIO, Op: op, Path: path, Err: err}
}

func NewNoMatch(input, reference string) *Error {
	return &Error{Kind: NoMatch, Op: "match distro name", Input: input, Reference: reference}
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Op != "" {
		sb.WriteString(e.Op)
	} else {
		sb.WriteString(e.Kind.String())
	}

	switch e.Kind {
	case NoMatch:
		fmt.Fprintf(&sb, ": no font logo found for distro %q", e.Input)
		if e.Reference != "" {
			fmt.Fprintf(&sb, " (the supported logos are listed at %s)", e.Reference)
		}
	default:
		if e.Input != "" {
			fmt.Fprintf(&sb, " for %q", e.Input)
		}
		if e.Path != "" {
			fmt.Fprintf(&sb, " (path=%s)", e.Path)
		}
	}

	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// WithInput returns a copy of the error annotated with the raw name being resolved.
func (e *Error) WithInput(input string) *Error {
	c := *e
	c.Input = input
	return &c
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match against any *Error of the same kind, which lets the package-level sentinels stand in for
// every error of their kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error found in the chain, or zero if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
