package argh

import "errors"

// ErrConfigNotFound is returned by Load and LoadValues when the option file
// does not exist. Hosts decide whether a missing file is fatal.
var ErrConfigNotFound = errors.New("option file not found")

// ErrUnknownFormat is returned by LoadValues when a file's format cannot be
// determined from its extension or content.
var ErrUnknownFormat = errors.New("unable to determine option file format")
