package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func item(id string) ResultItem {
	return ResultItem{
		ID:    id,
		Title: "video " + id,
		URL:   WatchURL(id),
	}
}

func TestCuratedListAddIsIdempotent(t *testing.T) {
	list := NewCuratedList()

	require.True(t, list.Add(item("abc")))
	require.True(t, list.Add(item("xyz")))
	require.False(t, list.Add(item("abc")), "re-adding the same identifier must be a silent no-op")

	require.Equal(t, 2, list.Len())
	items := list.Items()
	require.Equal(t, "abc", items[0].ID)
	require.Equal(t, "xyz", items[1].ID)
}

func TestCuratedListRemoveThenAddResetsPosition(t *testing.T) {
	list := NewCuratedList()
	list.Add(item("abc"))
	list.Add(item("def"))
	list.Add(item("xyz"))

	require.True(t, list.Remove("abc"))
	require.False(t, list.Contains("abc"))

	require.True(t, list.Add(item("abc")))
	items := list.Items()
	require.Equal(t, []string{"def", "xyz", "abc"}, []string{items[0].ID, items[1].ID, items[2].ID},
		"re-added item goes to the end, insertion order resets")
}

func TestCuratedListRemoveMissingIsNoop(t *testing.T) {
	list := NewCuratedList()
	list.Add(item("abc"))

	require.False(t, list.Remove("nope"))
	require.Equal(t, 1, list.Len())
}

func TestCuratedListClear(t *testing.T) {
	list := NewCuratedList()
	list.Add(item("abc"))
	list.Add(item("xyz"))

	list.Clear()
	require.Equal(t, 0, list.Len())
	require.Empty(t, list.Export())
}

func TestCuratedListExport(t *testing.T) {
	list := NewCuratedList()
	list.Add(item("abc"))
	list.Add(item("xyz"))

	got := list.Export()
	want := "https://www.youtube.com/watch?v=abc\nhttps://www.youtube.com/watch?v=xyz\n"
	require.Equal(t, want, got)

	// Export is a pure read.
	require.Equal(t, 2, list.Len())
	require.Equal(t, want, list.Export())
}

func TestCuratedListItemsIsDetached(t *testing.T) {
	list := NewCuratedList()
	list.Add(item("abc"))

	items := list.Items()
	items[0].ID = "mutated"

	require.True(t, list.Contains("abc"))
	require.False(t, list.Contains("mutated"))
}

func TestCuratedListIndependentOfSearchItems(t *testing.T) {
	// The same identifier may live in the curated list and a result page
	// without aliasing: items are value-equal by identifier.
	list := NewCuratedList()
	fromSearch := item("abc")
	list.Add(fromSearch)

	fromSearch.Title = "changed by the search view"
	require.Equal(t, "video abc", list.Items()[0].Title)
}
