package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

func TestBrowseOpensDetail(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Blue Wallet", "Leather", "2024-03-15", "Central Library")

	press(m, "4")
	require.Equal(t, pageBrowse, m.page)
	require.False(t, m.browse.empty)
	require.Len(t, m.browse.list.Items(), 1)

	press(m, "enter")
	require.Equal(t, pageDetail, m.page)
	view := m.View()
	assert.Contains(t, view, "Blue Wallet")
	assert.Contains(t, view, "Central Library")
	assert.Contains(t, view, "Lost")

	press(m, "esc")
	assert.Equal(t, pageBrowse, m.page)
	press(m, "esc")
	assert.Equal(t, pageMenu, m.page)
}

func TestPairItemsByID(t *testing.T) {
	m := newTestModel(t)
	lost := seedItem(t, m, item.StatusLost, "Blue Wallet", "Leather", "2024-03-15", "Central Library")
	found := seedItem(t, m, item.StatusFound, "Umbrella", "Black", "2024-03-16", "Cafeteria")

	press(m, "9")
	require.Equal(t, pagePair, m.page)

	press(m, "100", "enter")
	require.True(t, m.pair.second, "first id accepted")
	press(m, "101", "enter")

	assert.Equal(t, pageMenu, m.page)
	assert.Equal(t, "Items matched successfully!", m.toast.message)
	assert.Equal(t, "Item 100 matched with Item 101", m.toast.details)

	gotLost, err := m.reg.Get(lost.ID)
	require.NoError(t, err)
	gotFound, err := m.reg.Get(found.ID)
	require.NoError(t, err)
	assert.Equal(t, found.ID, gotLost.MatchedItemID)
	assert.Equal(t, lost.ID, gotFound.MatchedItemID)
}

func TestPairRejectsSameStatus(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Blue Wallet", "Leather", "2024-03-15", "Central Library")
	seedItem(t, m, item.StatusLost, "Umbrella", "Black", "2024-03-16", "Cafeteria")

	press(m, "9")
	press(m, "100", "enter")
	press(m, "101", "enter")

	assert.Equal(t, pageMenu, m.page)
	assert.True(t, m.toast.isError)
	assert.Equal(t, "Invalid match! You can only match a Lost item with a Found item.", m.toast.message)

	it, err := m.reg.Get(100)
	require.NoError(t, err)
	assert.False(t, it.Matched)
}

func TestPairFirstIDMustExist(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Blue Wallet", "Leather", "2024-03-15", "Central Library")

	press(m, "9")
	press(m, "999", "enter")

	assert.Equal(t, pagePair, m.page, "stays on the prompt")
	assert.False(t, m.pair.second)
	assert.Equal(t, "Item with ID 999 not found.", m.pair.errText)
}

func TestClaimMatchedPair(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Blue Wallet", "Leather", "2024-03-15", "Central Library")
	seedItem(t, m, item.StatusFound, "Wallet", "Brown leather", "2024-03-16", "Main Hall")
	require.NoError(t, m.reg.ConfirmMatch(100, 101))

	press(m, "8")
	require.Equal(t, pageClaim, m.page)
	press(m, "100", "enter")

	assert.Equal(t, pageMenu, m.page)
	assert.Equal(t, "Item marked as claimed successfully.", m.toast.message)
	for _, id := range []int32{100, 101} {
		it, err := m.reg.Get(id)
		require.NoError(t, err)
		assert.True(t, it.Claimed, "claiming one half claims both")
	}

	// The counterpart cannot be claimed a second time.
	press(m, "8")
	press(m, "101", "enter")
	assert.Equal(t, pageClaim, m.page)
	assert.Equal(t, "Item is already claimed.", m.claim.errText)
}

func TestClaimRequiresMatch(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Blue Wallet", "Leather", "2024-03-15", "Central Library")

	press(m, "8")
	press(m, "100", "enter")

	assert.Equal(t, pageClaim, m.page)
	assert.Equal(t, "Item cannot be claimed because it is not matched yet.", m.claim.errText)
}

func TestRemoveItemAfterConfirm(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Blue Wallet", "Leather", "2024-03-15", "Central Library")

	press(m, "7")
	require.Equal(t, pageRemove, m.page)
	press(m, "100", "enter")
	require.True(t, m.remove.confirming)
	assert.Contains(t, m.View(), "Are you sure you want to delete this item?")

	press(m, "tab", "enter") // move to Delete and submit
	assert.Equal(t, pageMenu, m.page)
	assert.Equal(t, "Item deleted successfully!", m.toast.message)
	assert.Equal(t, 0, m.reg.Count())
}

func TestRemoveCancelled(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Blue Wallet", "Leather", "2024-03-15", "Central Library")

	press(m, "7")
	press(m, "100", "enter")
	press(m, "n")

	assert.Equal(t, pageMenu, m.page)
	assert.Equal(t, "Deletion cancelled.", m.toast.message)
	assert.Equal(t, 1, m.reg.Count())
}

func TestClearAllItems(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Blue Wallet", "Leather", "2024-03-15", "Central Library")
	seedItem(t, m, item.StatusFound, "Umbrella", "Black", "2024-03-16", "Cafeteria")

	m.menu.cursor = 0
	press(m, "down", "down", "down", "down", "down", "down", "down", "down", "down", "down", "enter")
	require.Equal(t, pageClear, m.page)
	assert.Contains(t, m.View(), "Are you sure you want to delete ALL items?")

	press(m, "y")
	assert.Equal(t, pageMenu, m.page)
	assert.Equal(t, "All items cleared successfully.", m.toast.message)
	assert.Equal(t, 0, m.reg.Count())
	assert.Equal(t, registry.InitialID, m.reg.NextID(), "id numbering starts over")
}

func TestClearCancelled(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Blue Wallet", "Leather", "2024-03-15", "Central Library")

	m.openClear()
	press(m, "n")

	assert.Equal(t, pageMenu, m.page)
	assert.Equal(t, "Operation cancelled. No items were deleted.", m.toast.message)
	assert.Equal(t, 1, m.reg.Count())
}

func TestSortByName(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Umbrella", "Black", "2024-03-15", "Cafeteria")
	seedItem(t, m, item.StatusLost, "Charger", "USB-C", "2024-03-16", "Library")

	m.openSort()
	press(m, "2") // By Name
	require.Equal(t, sortPickOrder, m.sorting.step)
	press(m, "1") // Ascending

	assert.Equal(t, "Items sorted successfully!", m.toast.message)
	assert.Equal(t, sortPickKey, m.sorting.step)
	items := m.reg.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Charger", items[0].Name)
	assert.Equal(t, "Umbrella", items[1].Name)
}

func TestSortByDateRecentFirst(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Umbrella", "Black", "2024-03-15", "Cafeteria")
	seedItem(t, m, item.StatusLost, "Charger", "USB-C", "2024-06-01", "Library")

	m.openSort()
	press(m, "4") // By Date
	assert.Contains(t, m.View(), "Recent First")
	press(m, "1")

	items := m.reg.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "2024-06-01", items[0].Date.String())
}

func TestSearchByName(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Umbrella", "Black", "2024-03-15", "Cafeteria")
	seedItem(t, m, item.StatusLost, "Charger", "USB-C", "2024-03-16", "Library")

	press(m, "6")
	require.Equal(t, pageSearch, m.page)
	press(m, "enter") // By Name
	press(m, "umb", "enter")

	require.Equal(t, searchResults, m.search.step)
	require.False(t, m.search.noResults)
	require.Len(t, m.search.results.Items(), 1)
	entry := m.search.results.Items()[0].(itemListEntry)
	assert.Equal(t, "Umbrella", entry.it.Name)

	press(m, "esc")
	assert.Equal(t, searchPickField, m.search.step)
}

func TestSearchByStatusSkipsMatched(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Blue Wallet", "Leather", "2024-03-15", "Central Library")
	seedItem(t, m, item.StatusFound, "Wallet", "Brown leather", "2024-03-16", "Main Hall")
	seedItem(t, m, item.StatusLost, "Umbrella", "Black", "2024-03-17", "Cafeteria")
	require.NoError(t, m.reg.ConfirmMatch(100, 101))

	press(m, "6")
	press(m, "5")     // By Status
	press(m, "enter") // Lost

	require.False(t, m.search.noResults)
	require.Len(t, m.search.results.Items(), 1, "matched records are left out")
	entry := m.search.results.Items()[0].(itemListEntry)
	assert.Equal(t, "Umbrella", entry.it.Name)
}

func TestSearchWithoutMatches(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Umbrella", "Black", "2024-03-15", "Cafeteria")

	press(m, "6")
	press(m, "enter")
	press(m, "zzz", "enter")

	assert.True(t, m.search.noResults)
	assert.Contains(t, m.View(), "No items found matching criteria.")

	press(m, "enter") // any key returns to the field menu
	assert.Equal(t, searchPickField, m.search.step)
}

func TestEditSingleField(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Umbrella", "Black", "2024-03-15", "Cafeteria")

	press(m, "5")
	require.Equal(t, pageEdit, m.page)
	press(m, "100", "enter")
	require.Equal(t, editPickField, m.edit.step)

	press(m, "enter") // Name
	press(m, "Red Umbrella", "enter")

	assert.Equal(t, "Name updated successfully!", m.toast.message)
	assert.Equal(t, editPickField, m.edit.step)
	it, err := m.reg.Get(100)
	require.NoError(t, err)
	assert.Equal(t, "Red Umbrella", it.Name)

	press(m, "9") // Return to Main Menu
	assert.Equal(t, pageMenu, m.page)
}

func TestEditAllFields(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Umbrella", "Black", "2024-03-15", "Cafeteria")

	press(m, "5")
	press(m, "100", "enter")
	press(m, "8") // All Fields

	press(m, "Leather Satchel", "enter")
	press(m, "down", "enter") // second category
	press(m, "Brown canvas", "enter")
	press(m, "2024-04-01", "enter")
	press(m, "Gym Hall", "enter")
	press(m, "Dana", "enter")
	press(m, "dana@example.com", "enter")

	assert.Equal(t, "All fields updated successfully!", m.toast.message)
	assert.Equal(t, editPickField, m.edit.step)

	it, err := m.reg.Get(100)
	require.NoError(t, err)
	assert.Equal(t, "Leather Satchel", it.Name)
	assert.Equal(t, item.Categories()[1], it.Category)
	assert.Equal(t, "Brown canvas", it.Description)
	assert.Equal(t, "2024-04-01", it.Date.String())
	assert.Equal(t, "Gym Hall", it.Location)
	assert.Equal(t, "Dana", it.PersonName)
	assert.Equal(t, "dana@example.com", it.PersonContact)
}

func TestEditUnknownID(t *testing.T) {
	m := newTestModel(t)

	press(m, "5")
	press(m, "999", "enter")

	assert.Equal(t, editEnterID, m.edit.step)
	assert.Equal(t, "Item with ID 999 not found.", m.edit.errText)
}

func TestEditRejectsEmptyName(t *testing.T) {
	m := newTestModel(t)
	seedItem(t, m, item.StatusLost, "Umbrella", "Black", "2024-03-15", "Cafeteria")

	press(m, "5")
	press(m, "100", "enter")
	press(m, "enter") // Name
	press(m, "enter") // empty value

	assert.Equal(t, editEnterValue, m.edit.step)
	assert.Equal(t, "Input cannot be empty!", m.edit.errText)
}
