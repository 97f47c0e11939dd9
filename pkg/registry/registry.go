// Package registry is the record store: it owns the live item
// collection, assigns identifiers, and writes the whole collection back
// through its Store after every mutation. Matching, claiming and
// sorting live here too because they mutate the same state.
package registry

import (
	"fmt"
	"sync"

	"github.com/haleta-e/lost-and-found-manager/pkg/codec"
	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// InitialID is the first identifier handed out by an empty registry.
const InitialID int32 = 100

// Registry holds the item collection in memory for the process
// lifetime. All operations are safe for concurrent use; every mutating
// call persists the full collection before returning.
type Registry struct {
	items  []item.Item
	nextID int32
	store  Store
	mu     sync.RWMutex
}

// New creates a registry backed by the given store. Call Load to pull
// in previously persisted state.
func New(store Store) *Registry {
	return &Registry{
		nextID: InitialID,
		store:  store,
	}
}

// Load replaces the in-memory collection with the store's snapshot.
// A missing or unreadable store yields an empty collection with the id
// generator reset; that policy lives in the Store implementation.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("registry: loading store: %w", err)
	}

	r.items = snap.Items
	r.nextID = snap.NextID
	return nil
}

// Draft carries the caller-supplied fields of a new report. Identifier
// and pairing state are assigned by Add.
type Draft struct {
	Name          string
	Category      item.Category
	Description   string
	Date          item.Date
	Location      string
	Status        item.Status
	PersonName    string // owner for Lost, finder for Found; optional
	PersonContact string // optional
}

// Add creates a new record from the draft and persists the collection.
// Identifiers are strictly increasing and never reused within a store.
// When persistence fails the record stays in memory with its assigned
// id and the error wraps PersistError.
func (r *Registry) Add(d Draft) (item.Item, error) {
	if !d.Status.Valid() {
		return item.Item{}, fmt.Errorf("registry: invalid status %q", d.Status)
	}
	if !d.Category.Valid() {
		return item.Item{}, fmt.Errorf("registry: invalid category %q", d.Category)
	}
	if d.Date.IsZero() {
		return item.Item{}, fmt.Errorf("registry: date is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	it := item.Item{
		ID:            r.nextID,
		Name:          d.Name,
		Category:      d.Category,
		Description:   d.Description,
		Date:          d.Date,
		Location:      d.Location,
		Status:        d.Status,
		MatchedItemID: item.NoMatch,
		PersonName:    d.PersonName,
		PersonContact: d.PersonContact,
	}
	r.nextID++
	r.items = append(r.items, it)

	return it, r.persistLocked()
}

// Get retrieves a record by id.
func (r *Registry) Get(id int32) (item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexLocked(id)
	if i < 0 {
		return item.Item{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return r.items[i], nil
}

// Update applies a partial change set to a record and persists the
// collection. Pairing state is not updatable here; see ConfirmMatch and
// MarkClaimed. The returned item reflects the applied in-memory state
// even when persistence fails.
func (r *Registry) Update(id int32, c item.Changes) (item.Item, error) {
	if c.Empty() {
		return item.Item{}, ErrNoChanges
	}
	if err := c.Validate(); err != nil {
		return item.Item{}, fmt.Errorf("registry: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return item.Item{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	r.items[i].Apply(c)
	return r.items[i], r.persistLocked()
}

// Delete removes a record, preserving the relative order of the rest.
// If the record was matched its counterpart is unlinked again (matched
// and claimed cleared, counterpart id reset) so no record is left
// pointing at a dead id.
func (r *Registry) Delete(id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	if r.items[i].Matched {
		if j := r.indexLocked(r.items[i].MatchedItemID); j >= 0 {
			r.items[j].Matched = false
			r.items[j].Claimed = false
			r.items[j].MatchedItemID = item.NoMatch
		}
	}

	r.items = append(r.items[:i], r.items[i+1:]...)
	return r.persistLocked()
}

// Clear removes every record and resets the id generator.
func (r *Registry) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
	r.nextID = InitialID
	return r.persistLocked()
}

// Items returns a copy of the collection in original order.
func (r *Registry) Items() []item.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]item.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns the number of live records.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// NextID returns the id the next Add will assign.
func (r *Registry) NextID() int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.nextID
}

// indexLocked returns the position of id in the collection, or -1.
// Callers must hold the mutex.
func (r *Registry) indexLocked(id int32) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked writes the full collection through the store. Callers
// must hold the write lock. The in-memory state is already mutated and
// stays that way on failure.
func (r *Registry) persistLocked() error {
	snap := codec.Snapshot{NextID: r.nextID, Items: r.items}
	if err := r.store.Save(snap); err != nil {
		return &PersistError{Err: err}
	}
	return nil
}
