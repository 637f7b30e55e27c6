package user

// Record is a user entry in the directory.
type Record struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Directory looks up user records by id.
type Directory interface {
	Lookup(id int) (Record, bool)
}

// LookupFunc adapts a plain function to the Directory interface.
type LookupFunc func(id int) (Record, bool)

// Lookup calls f(id).
func (f LookupFunc) Lookup(id int) (Record, bool) { return f(id) }

// Default is the fixed directory backed by Lookup.
var Default Directory = LookupFunc(Lookup)

// records is never written after initialization.
var records = map[int]Record{
	1: {ID: 1, Username: "mockuser1", Email: "mockuser1@example.com"},
	2: {ID: 2, Username: "mockuser2", Email: "mockuser2@example.com"},
}

// Lookup returns the record for id, or false when no such user exists.
func Lookup(id int) (Record, bool) {
	r, ok := records[id]
	return r, ok
}
