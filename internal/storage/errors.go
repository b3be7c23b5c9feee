package storage

import "errors"

// ErrNotFound is returned by stores when a key has never been written.
var ErrNotFound = errors.New("key not found")
