package repositories

import "errors"

// ErrNotFound marks lookups and writes that matched no record. Callers
// wrap it with entity context; handlers check it with errors.Is and never
// expose the underlying store error.
var ErrNotFound = errors.New("record not found")
