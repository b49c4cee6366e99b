package domain

import "strings"

// CuratedList is the user-assembled shortlist: an ordered sequence with a
// uniqueness invariant on the identifier. It never interacts with search or
// pagination state and lives for the session only.
type CuratedList struct {
	items []ResultItem
}

func NewCuratedList() *CuratedList {
	return &CuratedList{}
}

// Add appends the item if no entry shares its identifier and reports whether
// the list changed. Re-adding an already curated item is an expected user
// action, so the duplicate case is a silent no-op.
func (c *CuratedList) Add(item ResultItem) bool {
	if c.Contains(item.ID) {
		return false
	}
	c.items = append(c.items, item)
	return true
}

// Remove deletes the entry with the given identifier, preserving the order of
// the rest. Reports whether an entry was removed.
func (c *CuratedList) Remove(id string) bool {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the list. Confirmation of this destructive step belongs to
// the caller.
func (c *CuratedList) Clear() {
	c.items = nil
}

func (c *CuratedList) Contains(id string) bool {
	for _, item := range c.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (c *CuratedList) Len() int {
	return len(c.items)
}

// Items returns a copy in insertion order.
func (c *CuratedList) Items() []ResultItem {
	out := make([]ResultItem, len(c.items))
	copy(out, c.items)
	return out
}

// Export renders the list as plain text, one canonical URL per line in
// curation order, no header or footer. It does not mutate the list.
func (c *CuratedList) Export() string {
	var b strings.Builder
	for _, item := range c.items {
		b.WriteString(item.URL)
		b.WriteString("\n")
	}
	return b.String()
}
