package distro

import (
	"errors"
	"strings"
)

// ErrUnknown is returned when a detector has no name to offer.
var ErrUnknown = errors.New("unable to determine distro name")

// Detector produces the raw, human-readable distro name of some host (e.g. "Ubuntu 22.04.3 LTS"). The result is
// untrusted and only meant for fuzzy matching.
type Detector interface {
	Name() (string, error)
}

// Static is a Detector that always reports the same name.
type Static string

func (s Static) Name() (string, error) {
	if strings.TrimSpace(string(s)) == "" {
		return "", ErrUnknown
	}
	return string(s), nil
}
