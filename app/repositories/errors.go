package repositories

import "errors"

// ErrNotFound is returned when the addressed record does not exist, or when
// a comment operation addresses a missing parent post.
var ErrNotFound = errors.New("record not found")
