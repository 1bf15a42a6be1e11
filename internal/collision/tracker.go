package collision

import (
	"fmt"

	"github.com/arloliu/eeagrid/errs"
)

// Tracker records function names by their hashed ID and rejects names that
// would be indistinguishable in an ID-keyed catalog.
type Tracker struct {
	names     map[uint64]string // ID → canonical name
	nameOrder []string          // registration order
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:     make(map[uint64]string),
		nameOrder: make([]string, 0),
	}
}

// Track records name under id.
//
// Returns:
//   - errs.ErrInvalidFunctionName if name is empty
//   - errs.ErrDuplicateFunction if the same name was already tracked
//   - errs.ErrHashCollision if a different name already owns id
func (t *Tracker) Track(name string, id uint64) error {
	if name == "" {
		return errs.ErrInvalidFunctionName
	}

	if existing, ok := t.names[id]; ok {
		if existing == name {
			return fmt.Errorf("%w: %s", errs.ErrDuplicateFunction, name)
		}

		return fmt.Errorf("%w: %q and %q share ID 0x%016x", errs.ErrHashCollision, existing, name, id)
	}

	t.names[id] = name
	t.nameOrder = append(t.nameOrder, name)

	return nil
}

// Name returns the name tracked under id.
func (t *Tracker) Name(id uint64) (string, bool) {
	name, ok := t.names[id]
	return name, ok
}

// Names returns the tracked names in registration order.
func (t *Tracker) Names() []string {
	return t.nameOrder
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.nameOrder)
}

// Reset clears all tracked names while keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.names)
	t.nameOrder = t.nameOrder[:0]
}
