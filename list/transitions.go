package list

// Pure state transitions over a list collection. Each function returns a
// new collection and never mutates its input; the Store owns current
// state and applies these under its lock. Unknown IDs leave the
// collection unchanged and report found=false.

func transitionAddList(lists []List, added List) []List {
	next := make([]List, 0, len(lists)+1)
	next = append(next, lists...)
	return append(next, added)
}

func transitionUpdateList(lists []List, id, title string, upd ListUpdate) ([]List, bool) {
	return mapList(lists, id, func(l List) List {
		l.Title = title
		if upd.Description != nil {
			l.Description = *upd.Description
		}
		if upd.Icon != nil {
			icon := *upd.Icon
			l.Icon = &icon
		}
		if upd.ClearIcon {
			l.Icon = nil
		}
		return l
	})
}

func transitionDeleteList(lists []List, id string) ([]List, bool) {
	next := make([]List, 0, len(lists))
	found := false
	for _, l := range lists {
		if l.ID == id {
			found = true
			continue
		}
		next = append(next, l)
	}
	if !found {
		return lists, false
	}
	return next, true
}

func transitionTogglePin(lists []List, id string) ([]List, bool) {
	return mapList(lists, id, func(l List) List {
		l.Pinned = !l.Pinned
		return l
	})
}

func transitionAddItem(lists []List, listID string, item Item) ([]List, bool) {
	return mapList(lists, listID, func(l List) List {
		items := make([]Item, 0, len(l.Items)+1)
		items = append(items, l.Items...)
		item.Order = len(items)
		l.Items = append(items, item)
		return l
	})
}

func transitionUpdateItem(lists []List, listID, itemID string, upd ItemUpdate) ([]List, bool) {
	return mapItem(lists, listID, itemID, func(item Item) Item {
		if upd.Title != nil {
			item.Title = *upd.Title
		}
		if upd.Description != nil {
			item.Description = *upd.Description
		}
		if upd.Notes != nil {
			item.Notes = *upd.Notes
		}
		if upd.Category != nil {
			item.Category = *upd.Category
		}
		if upd.Priority != nil {
			item.Priority = *upd.Priority
		}
		if upd.DueDate != nil {
			item.DueDate = *upd.DueDate
		}
		return item
	})
}

func transitionToggleItem(lists []List, listID, itemID string) ([]List, bool) {
	return mapItem(lists, listID, itemID, func(item Item) Item {
		item.Completed = !item.Completed
		return item
	})
}

func transitionDeleteItem(lists []List, listID, itemID string) ([]List, bool) {
	found := false
	next, listFound := mapList(lists, listID, func(l List) List {
		items := make([]Item, 0, len(l.Items))
		for _, item := range l.Items {
			if item.ID == itemID {
				found = true
				continue
			}
			items = append(items, item)
		}
		l.Items = renumber(items)
		return l
	})
	if !listFound || !found {
		return lists, false
	}
	return next, true
}

func transitionReorderItems(lists []List, listID string, items []Item) ([]List, bool) {
	return mapList(lists, listID, func(l List) List {
		replaced := make([]Item, len(items))
		copy(replaced, items)
		l.Items = replaced
		return l
	})
}

// renumber assigns dense order values 0..n-1, preserving sequence.
func renumber(items []Item) []Item {
	for i := range items {
		items[i].Order = i
	}
	return items
}

// mapList rebuilds the collection with fn applied to the list matching
// id. The matched list is deep-copied before fn sees it.
func mapList(lists []List, id string, fn func(List) List) ([]List, bool) {
	next := make([]List, len(lists))
	found := false
	for i, l := range lists {
		if l.ID != id {
			next[i] = l
			continue
		}
		found = true
		next[i] = fn(cloneList(l))
	}
	if !found {
		return lists, false
	}
	return next, true
}

func mapItem(lists []List, listID, itemID string, fn func(Item) Item) ([]List, bool) {
	found := false
	next, listFound := mapList(lists, listID, func(l List) List {
		for i := range l.Items {
			if l.Items[i].ID == itemID {
				found = true
				l.Items[i] = fn(l.Items[i])
				break
			}
		}
		return l
	})
	if !listFound || !found {
		return lists, false
	}
	return next, true
}

// MoveItem returns a copy of items with the item moved to position to
// (clamped to the valid range) and order values renumbered densely.
// Intended for building the ReorderItems argument.
func MoveItem(items []Item, itemID string, to int) ([]Item, bool) {
	from := -1
	for i, item := range items {
		if item.ID == itemID {
			from = i
			break
		}
	}
	if from == -1 {
		return nil, false
	}

	if to < 0 {
		to = 0
	}
	if to > len(items)-1 {
		to = len(items) - 1
	}

	moved := make([]Item, 0, len(items))
	moved = append(moved, items[:from]...)
	moved = append(moved, items[from+1:]...)
	moved = append(moved[:to], append([]Item{items[from]}, moved[to:]...)...)

	return renumber(moved), true
}
