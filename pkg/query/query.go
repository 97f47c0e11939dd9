// Package query filters item snapshots. Every function is stateless,
// reads a caller-supplied slice, and returns matches in their original
// order; an empty result is a result, not an error.
package query

import (
	"strings"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// ByName returns items whose name contains q, case-insensitively.
// An empty query matches everything.
func ByName(items []item.Item, q string) []item.Item {
	return filter(items, func(it item.Item) bool {
		return containsFold(it.Name, q)
	})
}

// ByCategory returns items whose category contains q, case-insensitively.
func ByCategory(items []item.Item, q string) []item.Item {
	return filter(items, func(it item.Item) bool {
		return containsFold(string(it.Category), q)
	})
}

// ByDescription returns items whose description contains q,
// case-insensitively.
func ByDescription(items []item.Item, q string) []item.Item {
	return filter(items, func(it item.Item) bool {
		return containsFold(it.Description, q)
	})
}

// ByLocation returns items whose location contains q, case-insensitively.
func ByLocation(items []item.Item, q string) []item.Item {
	return filter(items, func(it item.Item) bool {
		return containsFold(it.Location, q)
	})
}

// ByDate returns items reported on exactly the given date.
func ByDate(items []item.Item, d item.Date) []item.Item {
	return filter(items, func(it item.Item) bool {
		return it.Date == d
	})
}

// ByStatus returns unmatched items with the given status. Matched
// records are excluded so the result surfaces only outstanding reports.
func ByStatus(items []item.Item, s item.Status) []item.Item {
	return filter(items, func(it item.Item) bool {
		return !it.Matched && strings.EqualFold(string(it.Status), string(s))
	})
}

// ByMatched returns items whose matched flag equals the given value.
func ByMatched(items []item.Item, matched bool) []item.Item {
	return filter(items, func(it item.Item) bool {
		return it.Matched == matched
	})
}

// ByClaimed returns items whose claimed flag equals the given value.
func ByClaimed(items []item.Item, claimed bool) []item.Item {
	return filter(items, func(it item.Item) bool {
		return it.Claimed == claimed
	})
}

func filter(items []item.Item, keep func(item.Item) bool) []item.Item {
	var out []item.Item
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(
		strings.ToLower(haystack),
		strings.ToLower(needle),
	)
}
