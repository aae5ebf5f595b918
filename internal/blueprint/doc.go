// Package blueprint provides the in-memory blueprint store for Blueprints Core.
//
// A blueprint is a named point-sequence owned by an author. Records are
// addressed by a composite key derived from the author and the name with
// spaces removed ("student" + "Casa de campo" → "student_Casadecampo"),
// preserved for wire compatibility with the system this service replaces.
//
// The store is a mutex-guarded map. Concurrent reads are safe; concurrent
// writes to the same key are unordered relative to each other and the last
// write wins — there is no per-key lock, no versioning, no transaction.
// Nothing survives process exit; persistence is explicitly out of scope.
package blueprint
