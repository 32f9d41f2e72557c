package repositories

import "errors"

// ErrNotFound is returned by all repositories when a record does not exist.
var ErrNotFound = errors.New("record not found")
