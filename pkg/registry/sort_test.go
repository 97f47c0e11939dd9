package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// sortFixture seeds a registry with four records whose fields disagree
// on every sort key. Collection order is the id order 100..103.
func sortFixture(t *testing.T) (*Registry, *memStore) {
	t.Helper()
	store := newMemStore()
	reg := New(store)

	drafts := []Draft{
		{Name: "Umbrella", Category: item.CategoryOther,
			Date: item.MustDate("2024-04-02"), Location: "Bus Stop", Status: item.StatusLost},
		{Name: "Charger", Category: item.CategoryElectronics,
			Date: item.MustDate("2024-01-15"), Location: "Lab", Status: item.StatusFound},
		{Name: "Scarf", Category: item.CategoryClothing,
			Date: item.MustDate("2024-03-20"), Location: "Park", Status: item.StatusLost},
		{Name: "Passport", Category: item.CategoryDocuments,
			Date: item.MustDate("2024-02-01"), Location: "Airport", Status: item.StatusFound},
	}
	for _, d := range drafts {
		_, err := reg.Add(d)
		require.NoError(t, err)
	}
	return reg, store
}

func orderOf(reg *Registry) []int32 {
	items := reg.Items()
	ids := make([]int32, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestSortByIDRoundTrip(t *testing.T) {
	reg, _ := sortFixture(t)

	require.NoError(t, reg.SortBy(SortByID, Descending))
	assert.Equal(t, []int32{103, 102, 101, 100}, orderOf(reg))

	// Descending then ascending restores the original order.
	require.NoError(t, reg.SortBy(SortByID, Ascending))
	assert.Equal(t, []int32{100, 101, 102, 103}, orderOf(reg))
}

func TestSortByName(t *testing.T) {
	reg, _ := sortFixture(t)

	require.NoError(t, reg.SortBy(SortByName, Ascending))
	// Charger, Passport, Scarf, Umbrella
	assert.Equal(t, []int32{101, 103, 102, 100}, orderOf(reg))

	require.NoError(t, reg.SortBy(SortByName, Descending))
	assert.Equal(t, []int32{100, 102, 103, 101}, orderOf(reg))
}

func TestSortByCategory(t *testing.T) {
	reg, _ := sortFixture(t)

	require.NoError(t, reg.SortBy(SortByCategory, Ascending))
	// Clothing, Documents, Electronics, Other
	assert.Equal(t, []int32{102, 103, 101, 100}, orderOf(reg))
}

func TestSortByDate(t *testing.T) {
	reg, _ := sortFixture(t)

	require.NoError(t, reg.SortBy(SortByDate, OlderFirst))
	// 2024-01-15, 2024-02-01, 2024-03-20, 2024-04-02
	assert.Equal(t, []int32{101, 103, 102, 100}, orderOf(reg))

	require.NoError(t, reg.SortBy(SortByDate, RecentFirst))
	assert.Equal(t, []int32{100, 102, 103, 101}, orderOf(reg))
}

// TestSortByStatusDirections pins the direction labels to their
// orderings: "Found" sorts before "Lost" lexicographically, so
// LostFirst is the descending comparator. The labels are part of the
// tool's contract.
func TestSortByStatusDirections(t *testing.T) {
	reg, _ := sortFixture(t)

	require.NoError(t, reg.SortBy(SortByStatus, LostFirst))
	items := reg.Items()
	assert.Equal(t, item.StatusLost, items[0].Status)
	assert.Equal(t, item.StatusLost, items[1].Status)
	assert.Equal(t, item.StatusFound, items[2].Status)
	assert.Equal(t, item.StatusFound, items[3].Status)

	require.NoError(t, reg.SortBy(SortByStatus, FoundFirst))
	items = reg.Items()
	assert.Equal(t, item.StatusFound, items[0].Status)
	assert.Equal(t, item.StatusLost, items[3].Status)
}

// TestSortStability checks that records with equal keys keep their
// relative collection order.
func TestSortStability(t *testing.T) {
	store := newMemStore()
	reg := New(store)

	// All same category; ids are the only distinguishing order.
	for _, name := range []string{"A", "B", "C"} {
		_, err := reg.Add(Draft{
			Name: name, Category: item.CategoryKeys,
			Date: item.MustDate("2024-05-05"), Location: "Desk", Status: item.StatusLost,
		})
		require.NoError(t, err)
	}

	require.NoError(t, reg.SortBy(SortByCategory, Ascending))
	assert.Equal(t, []int32{100, 101, 102}, orderOf(reg))

	require.NoError(t, reg.SortBy(SortByCategory, Descending))
	assert.Equal(t, []int32{100, 101, 102}, orderOf(reg),
		"equal keys must not reorder in either direction")
}

func TestSortPersistsNewOrder(t *testing.T) {
	reg, store := sortFixture(t)
	savesBefore := store.saves

	require.NoError(t, reg.SortBy(SortByName, Ascending))
	assert.Equal(t, savesBefore+1, store.saves)

	// The persisted snapshot carries the sorted order.
	require.Len(t, store.snap.Items, 4)
	assert.Equal(t, "Charger", store.snap.Items[0].Name)
}

func TestSortRejectsUnknownKeyAndOrder(t *testing.T) {
	reg, store := sortFixture(t)
	savesBefore := store.saves

	require.Error(t, reg.SortBy(SortKey("weight"), Ascending))
	require.Error(t, reg.SortBy(SortByName, SortOrder("sideways")))

	assert.Equal(t, []int32{100, 101, 102, 103}, orderOf(reg), "rejected sorts must not reorder")
	assert.Equal(t, savesBefore, store.saves)
}
