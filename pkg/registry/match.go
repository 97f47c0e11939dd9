package registry

import (
	"fmt"
	"strings"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// FindCandidates scans the collection for possible counterparts of the
// given record: opposite status, not yet matched, and at least one of
// name, category, description or location overlapping as a
// case-insensitive substring in either direction. Candidates come back
// in collection order; none is a normal outcome.
func (r *Registry) FindCandidates(of item.Item) []item.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []item.Item
	for _, other := range r.items {
		if other.ID == of.ID || other.Matched || other.Status == of.Status {
			continue
		}
		if fieldsOverlap(of, other) {
			out = append(out, other)
		}
	}
	return out
}

// ConfirmMatch pairs two records: both get matched set and each points
// at the other's id. Every precondition is checked before any mutation,
// so a failed pairing changes nothing on either side.
func (r *Registry) ConfirmMatch(id1, id2 int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id1)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id1)
	}
	j := r.indexLocked(id2)
	if j < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id2)
	}

	if id1 == id2 {
		return fmt.Errorf("%w: cannot pair item %d with itself", ErrInvalidPairing, id1)
	}
	if r.items[i].Status == r.items[j].Status {
		return fmt.Errorf("%w: items %d and %d are both %s (need one Lost and one Found)",
			ErrInvalidPairing, id1, id2, r.items[i].Status)
	}
	if r.items[i].Matched {
		return fmt.Errorf("%w: id %d", ErrAlreadyMatched, id1)
	}
	if r.items[j].Matched {
		return fmt.Errorf("%w: id %d", ErrAlreadyMatched, id2)
	}

	r.items[i].Matched = true
	r.items[i].MatchedItemID = id2
	r.items[j].Matched = true
	r.items[j].MatchedItemID = id1

	return r.persistLocked()
}

// MarkClaimed marks a matched record as returned to its owner. The
// counterpart is claimed along with it; claiming one half of a pair
// always claims both. A counterpart id that no longer resolves (stores
// written by older tools can carry these) is tolerated and the record
// itself is still claimed.
func (r *Registry) MarkClaimed(id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if !r.items[i].Matched {
		return fmt.Errorf("%w: id %d", ErrNotMatched, id)
	}
	if r.items[i].Claimed {
		return fmt.Errorf("%w: id %d", ErrAlreadyClaimed, id)
	}

	r.items[i].Claimed = true
	if j := r.indexLocked(r.items[i].MatchedItemID); j >= 0 {
		r.items[j].Claimed = true
	}

	return r.persistLocked()
}

// fieldsOverlap reports whether any of the four descriptive fields of a
// and b contain each other case-insensitively, in either direction.
func fieldsOverlap(a, b item.Item) bool {
	return eitherContains(a.Name, b.Name) ||
		eitherContains(string(a.Category), string(b.Category)) ||
		eitherContains(a.Description, b.Description) ||
		eitherContains(a.Location, b.Location)
}

// eitherContains ignores blank fields: the empty string is a substring
// of everything, and counting that as overlap would surface every
// opposite-status record whenever one side left a field empty.
func eitherContains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
