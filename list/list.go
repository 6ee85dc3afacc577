// Package list implements the list/to-do core: the canonical in-memory
// collection of lists and their items, mutated through store operations,
// mirrored to a key-value store as a single JSON blob after every change.
//
// The public API mirrors the actions the presentation layer can take:
//   - AddList, UpdateList, DeleteList, CloneList, TogglePinList for lists
//   - AddItem, UpdateItem, ToggleItem, DeleteItem, ReorderItems for items
//   - Undo for the one-slot undo of destructive/pin actions
package list

// List is a named, user-created collection of items.
type List struct {
	// ID is an opaque unique identifier, assigned at creation.
	ID string `json:"id"`

	// Title is the display name. Non-empty after trimming; trimming is
	// the caller's responsibility.
	Title string `json:"title"`

	// Description provides optional additional context.
	Description string `json:"description,omitempty"`

	// Icon is an optional display icon.
	Icon *Icon `json:"icon,omitempty"`

	// Pinned lists sort ahead of unpinned ones in every sort mode.
	Pinned bool `json:"pinned"`

	// Items are stored in insertion order; display order is a derived,
	// sorted view.
	Items []Item `json:"items"`

	// CreatedAt is the creation time in epoch milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// Icon is a named icon with a display color.
type Icon struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CloneLists deep-copies a collection, including each list's items and
// icon. Used for undo snapshots and for handing state out of the store
// without aliasing.
func CloneLists(lists []List) []List {
	if lists == nil {
		return nil
	}
	cloned := make([]List, len(lists))
	for i, l := range lists {
		cloned[i] = cloneList(l)
	}
	return cloned
}

func cloneList(l List) List {
	cloned := l
	if l.Icon != nil {
		icon := *l.Icon
		cloned.Icon = &icon
	}
	cloned.Items = make([]Item, len(l.Items))
	copy(cloned.Items, l.Items)
	return cloned
}
