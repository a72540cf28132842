package log

import "io"

// CloseAndLogError closes the given closer, logging (rather than returning) any failure. The location names the
// resource in the log line.
func CloseAndLogError(closer io.Closer, location string) {
	if closer == nil {
		Debugf("no closer provided when attempting to close: %v", location)
		return
	}
	if err := closer.Close(); err != nil {
		Warnf("unable to close %v: %v", location, err)
	}
}
