package blueprint

import (
	"strconv"
	"strings"
	"time"
)

// Blueprint is one stored record.
//
// Points is a loosely structured display string such as
// "[(0,0), (10,10), (20,0)]". The format is kept as-is for compatibility;
// it is not safely parseable back into coordinates.
type Blueprint struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Author string `json:"author"`
	Points string `json:"points"`
}

// key addresses a record in the store. Keeping author and normalised name
// as separate fields avoids the collision ambiguity of concatenated string
// keys while preserving the same addressing behaviour.
type key struct {
	author string
	name   string
}

// keyFor builds the storage key for an author/name pair.
func keyFor(author, name string) key {
	return key{author: author, name: NormalizeName(name)}
}

// NormalizeName strips all spaces from a blueprint name. Records are
// addressed by the normalised form, so "Casa de campo" and "Casadecampo"
// resolve to the same entry.
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, " ", "")
}

// NewID generates a blueprint ID from the current time in milliseconds,
// e.g. "bp_1695177600000". IDs are not checked for uniqueness; the
// composite key, not the ID, addresses records.
func NewID() string {
	return "bp_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// FormatPoint renders a coordinate pair in the "(x,y)" wire format.
// The inputs are the literal JSON number texts, so integers stay integers.
func FormatPoint(x, y string) string {
	return "(" + x + "," + y + ")"
}
