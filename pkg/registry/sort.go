package registry

import (
	"fmt"
	"sort"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// SortKey selects the field a sort compares on.
type SortKey string

const (
	SortByID       SortKey = "id"
	SortByName     SortKey = "name"
	SortByCategory SortKey = "category"
	SortByDate     SortKey = "date"
	SortByStatus   SortKey = "status"
)

// SortOrder selects the direction of a sort.
type SortOrder string

const (
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"

	// Date and status sorts name their directions after what they put
	// first. "Found" sorts before "Lost", so putting Lost first means
	// descending; this mapping is part of the tool's contract and must
	// not be re-derived from the label's intuitive meaning.
	RecentFirst = Descending
	OlderFirst  = Ascending
	LostFirst   = Descending
	FoundFirst  = Ascending
)

// SortBy reorders the whole collection in place, stably, and persists
// the new order. Records with equal keys keep their relative positions.
func (r *Registry) SortBy(key SortKey, order SortOrder) error {
	less, err := lessFunc(key)
	if err != nil {
		return err
	}
	if order != Ascending && order != Descending {
		return fmt.Errorf("registry: unknown sort order %q", order)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sort.SliceStable(r.items, func(i, j int) bool {
		if order == Descending {
			return less(r.items[j], r.items[i])
		}
		return less(r.items[i], r.items[j])
	})

	return r.persistLocked()
}

// lessFunc returns the ascending comparator for a sort key. Name,
// category and status compare lexicographically on their stored text;
// date compares on the canonical YYYY-MM-DD form, which orders
// chronologically.
func lessFunc(key SortKey) (func(a, b item.Item) bool, error) {
	switch key {
	case SortByID:
		return func(a, b item.Item) bool { return a.ID < b.ID }, nil
	case SortByName:
		return func(a, b item.Item) bool { return a.Name < b.Name }, nil
	case SortByCategory:
		return func(a, b item.Item) bool { return a.Category < b.Category }, nil
	case SortByDate:
		return func(a, b item.Item) bool { return a.Date.Before(b.Date) }, nil
	case SortByStatus:
		return func(a, b item.Item) bool { return a.Status < b.Status }, nil
	}
	return nil, fmt.Errorf("registry: unknown sort key %q", key)
}
