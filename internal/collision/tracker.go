// Package collision detects duplicate names and hash collisions in the
// static name tables keyed by hash.ID.
package collision

import (
	"fmt"

	"github.com/arloliu/vbsp/errs"
)

// Tracker records name/hash pairs and reports duplicates and collisions.
// Names are kept in insertion order.
type Tracker struct {
	names        map[uint64]string // hash → first name seen
	namesList    []string
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:     make(map[uint64]string),
		namesList: make([]string, 0),
	}
}

// Track records name under hash.
//
// Returns:
//   - ErrEmptyName if name is empty
//   - ErrDuplicateName if the same name was already tracked
//   - ErrHashCollision if a different name already owns hash; the name is
//     still recorded and HasCollision reports true afterwards
func (t *Tracker) Track(name string, hash uint64) error {
	if name == "" {
		return errs.ErrEmptyName
	}

	if existing, exists := t.names[hash]; exists {
		if existing == name {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateName, name)
		}
		t.hasCollision = true
		t.namesList = append(t.namesList, name)

		return fmt.Errorf("%w: %q and %q share %#016x", errs.ErrHashCollision, existing, name, hash)
	}

	t.names[hash] = name
	t.namesList = append(t.namesList, name)

	return nil
}

// Lookup returns the first name tracked under hash.
func (t *Tracker) Lookup(hash uint64) (string, bool) {
	name, ok := t.names[hash]

	return name, ok
}

// HasCollision returns true if a collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in the order Track accepted them.
func (t *Tracker) Names() []string {
	return t.namesList
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.namesList)
}

// Reset clears all tracked names and collision state.
func (t *Tracker) Reset() {
	clear(t.names)
	t.namesList = t.namesList[:0]
	t.hasCollision = false
}
