// Package atom implements the interned-string ("atom") side table the
// sorted-mode reference-value comparator consults to turn a
// format.KindInternedPointer id back into bytes. It is a minimal in-memory
// implementation of the resolve(id) -> bytes collaborator contract; a
// production deployment might back this with a persistent store instead.
package atom

import (
	"sync"

	"github.com/mattsta/flex/internal/errs"
	"github.com/mattsta/flex/internal/hash"
)

// Table interns byte strings and resolves their ids back to bytes. The
// zero value is not usable; use New. Safe for concurrent use.
type Table struct {
	mu   sync.RWMutex
	byID map[uint64][]byte
}

// New returns an empty Table.
func New() *Table {
	return &Table{byID: make(map[uint64][]byte)}
}

// Intern registers s under its xxHash64 id, returning the id. Interning
// the same bytes twice returns the same id without storing a duplicate.
// Interning two different byte strings that collide to the same xxHash64
// id is an ErrCorrupt — this table has no secondary disambiguation, so a
// collision would silently swap one string for another on Resolve.
func (t *Table) Intern(s []byte) (uint64, error) {
	id := hash.ID(string(s))

	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, ok := t.byID[id]; ok {
		if string(existing) != string(s) {
			return 0, errs.ErrCorrupt
		}

		return id, nil
	}

	cp := make([]byte, len(s))
	copy(cp, s)
	t.byID[id] = cp

	return id, nil
}

// Resolve returns the bytes interned under id, if any.
func (t *Table) Resolve(id uint64) ([]byte, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	b, ok := t.byID[id]

	return b, ok
}

// Len returns the number of distinct strings currently interned.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.byID)
}
