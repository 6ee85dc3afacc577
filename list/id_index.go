package list

import (
	"fmt"

	"trackr/internal/ids"
)

// IDIndex indexes IDs for prefix matching and display.
type IDIndex struct {
	ids []string
}

// NewIDIndex builds an index over the given IDs.
func NewIDIndex(values []string) IDIndex {
	return IDIndex{ids: ids.NormalizeUnique(values)}
}

// NewListIndex builds an index over the IDs of all lists.
func NewListIndex(lists []List) IDIndex {
	listIDs := make([]string, 0, len(lists))
	for _, l := range lists {
		listIDs = append(listIDs, l.ID)
	}
	return NewIDIndex(listIDs)
}

// NewItemIndex builds an index over the IDs of one list's items.
func NewItemIndex(l List) IDIndex {
	itemIDs := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		itemIDs = append(itemIDs, item.ID)
	}
	return NewIDIndex(itemIDs)
}

// Resolve returns the full ID for a prefix.
func (index IDIndex) Resolve(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrIDNotFound
	}

	match, found, ambiguous := ids.MatchPrefix(index.ids, prefix)
	if !found {
		return "", ErrIDNotFound
	}
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousIDPrefix, prefix)
	}

	return match, nil
}

// PrefixLengths returns the shortest unique prefix length for each ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengths(index.ids)
}
