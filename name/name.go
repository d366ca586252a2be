// Package name implements a process-wide, thread-safe string interning
// table. Two Names compare equal iff they were interned from byte-equal
// strings, and that comparison is a pointer comparison once interned.
package name

import "sync"

// Name is an interned, identity-comparable token for a field name.
// The zero Name reads as the empty string and is Equal to Empty(), but
// it is a different value from Empty() under == and as a map key.
type Name struct {
	canonical *string
}

var emptyStr = ""
var empty = Name{canonical: &emptyStr}

// Empty is the distinguished Name interned from the empty string.
func Empty() Name { return empty }

// String returns the underlying string.
func (n Name) String() string {
	if n.canonical == nil {
		return ""
	}
	return *n.canonical
}

// Equal reports whether n and other were interned from the same bytes.
func (n Name) Equal(other Name) bool {
	if n.canonical == nil || other.canonical == nil {
		return n.String() == other.String()
	}
	return n.canonical == other.canonical
}

// Registry is a thread-safe intern table mapping byte strings to a
// canonical, immortal *string. Lookup takes a read lock on the fast
// path; only inserting a new entry takes the write lock.
type Registry struct {
	mu      sync.RWMutex
	strings map[string]*string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{strings: make(map[string]*string)}
}

// Intern returns the canonical Name for s, interning it if this is the
// first time s has been seen.
func (r *Registry) Intern(s string) Name {
	if s == "" {
		return empty
	}

	r.mu.RLock()
	canonical, ok := r.strings[s]
	r.mu.RUnlock()
	if ok {
		return Name{canonical: canonical}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if canonical, ok := r.strings[s]; ok {
		return Name{canonical: canonical}
	}
	owned := s
	r.strings[s] = &owned
	return Name{canonical: &owned}
}

// Default is the process-wide registry used by package fql and its
// collaborators; field names live for the process lifetime.
var Default = NewRegistry()

// Intern interns s against the process-wide Default registry.
func Intern(s string) Name { return Default.Intern(s) }
