package blueprint

import "errors"

// ErrNotFound is returned when no record matches the requested key, and by
// ListByAuthor when an author has zero records. The API maps it to 404 in
// both cases — an empty author query is a miss, not an empty list.
var ErrNotFound = errors.New("blueprint not found")
