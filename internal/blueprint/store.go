package blueprint

import "sync"

// Store is the concurrent in-memory blueprint collection.
//
// Thread Safety: all methods are safe for concurrent use. Writes to the
// same key race with last-write-wins semantics, matching the data model
// this service reproduces.
type Store struct {
	mu      sync.RWMutex
	records map[key]Blueprint
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		records: make(map[key]Blueprint),
	}
}

// List returns all records. Order is unspecified — it follows map
// iteration and is not stable between calls.
func (s *Store) List() []Blueprint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Blueprint, 0, len(s.records))
	for _, bp := range s.records {
		out = append(out, bp)
	}
	return out
}

// ListByAuthor returns all records owned by the author.
// Zero matches is ErrNotFound, not an empty slice.
func (s *Store) ListByAuthor(author string) ([]Blueprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Blueprint
	for _, bp := range s.records {
		if bp.Author == author {
			out = append(out, bp)
		}
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// Get returns the record for the author/name pair, or ErrNotFound.
func (s *Store) Get(author, name string) (Blueprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bp, ok := s.records[keyFor(author, name)]
	if !ok {
		return Blueprint{}, ErrNotFound
	}
	return bp, nil
}

// Put stores the record at its computed key. It is an unconditional
// upsert: an existing record at the same key is silently overwritten.
func (s *Store) Put(bp Blueprint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[keyFor(bp.Author, bp.Name)] = bp
}

// AppendPoint appends a "(x,y)" point to an existing record's points
// string with a ", " separator, replacing the whole record. The inputs are
// the literal JSON number texts. Returns the formatted point, or
// ErrNotFound if no record exists at the key.
func (s *Store) AppendPoint(author, name, x, y string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := keyFor(author, name)
	bp, ok := s.records[k]
	if !ok {
		return "", ErrNotFound
	}

	point := FormatPoint(x, y)
	bp.Points = bp.Points + ", " + point
	s.records[k] = bp

	return point, nil
}

// Delete removes and returns the record at the author/name key, or
// ErrNotFound if absent.
func (s *Store) Delete(author, name string) (Blueprint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := keyFor(author, name)
	bp, ok := s.records[k]
	if !ok {
		return Blueprint{}, ErrNotFound
	}
	delete(s.records, k)
	return bp, nil
}

// Count returns the number of stored records.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
