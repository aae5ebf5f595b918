package auth

// Credentials is the fixed username→password store.
//
// The set is immutable after construction, so lookups need no locking.
// Comparison is plain string equality, not constant-time — this reproduces
// the behaviour of the system this service is wire-compatible with and is a
// known weakness.
type Credentials struct {
	users map[string]string
}

// NewCredentials builds a credential store from the configured users.
// Later duplicates of a username overwrite earlier ones.
func NewCredentials(users []User) *Credentials {
	m := make(map[string]string, len(users))
	for _, u := range users {
		m[u.Username] = u.Password
	}
	return &Credentials{users: m}
}

// Validate reports whether the username/password pair matches a known user.
// It fails closed: unknown usernames and mismatched passwords both return
// false, and it never panics or errors.
func (c *Credentials) Validate(username, password string) bool {
	stored, ok := c.users[username]
	return ok && stored == password
}

// Count returns the number of configured users.
func (c *Credentials) Count() int {
	return len(c.users)
}
