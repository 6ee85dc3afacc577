package list

import (
	"fmt"
	"sort"
	"strings"

	internalstrings "trackr/internal/strings"
)

// SortMode selects how a collection is ordered for display.
type SortMode string

const (
	// SortChronological orders by creation time, oldest first.
	SortChronological SortMode = "chrono"

	// SortReverseChronological orders by creation time, newest first.
	SortReverseChronological SortMode = "reverse-chrono"

	// SortAlphabetical orders by title, case-insensitively.
	SortAlphabetical SortMode = "alpha"

	// SortCustom orders items by their order field; lists keep their
	// stored (creation) order.
	SortCustom SortMode = "custom"
)

// ValidSortModes returns all valid sort mode values.
func ValidSortModes() []SortMode {
	return []SortMode{SortChronological, SortReverseChronological, SortAlphabetical, SortCustom}
}

// IsValid returns true if the mode is a known valid value.
func (m SortMode) IsValid() bool {
	for _, valid := range ValidSortModes() {
		if m == valid {
			return true
		}
	}
	return false
}

// ParseSortMode converts user input to a SortMode.
func ParseSortMode(value string) (SortMode, error) {
	mode := SortMode(internalstrings.NormalizeLowerTrimSpace(value))
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: chrono, reverse-chrono, alpha, custom)", ErrInvalidSortMode, value)
	}
	return mode, nil
}

// SortLists returns a new ordered view of the collection: pinned lists
// first, then unpinned, each group sorted by the selected mode. The
// input is never mutated.
func SortLists(lists []List, mode SortMode) []List {
	pinned := make([]List, 0, len(lists))
	unpinned := make([]List, 0, len(lists))
	for _, l := range lists {
		if l.Pinned {
			pinned = append(pinned, l)
		} else {
			unpinned = append(unpinned, l)
		}
	}

	sortListGroup(pinned, mode)
	sortListGroup(unpinned, mode)
	return append(pinned, unpinned...)
}

func sortListGroup(group []List, mode SortMode) {
	switch mode {
	case SortAlphabetical:
		sort.SliceStable(group, func(i, j int) bool {
			return lessFold(group[i].Title, group[j].Title)
		})
	case SortChronological:
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CreatedAt < group[j].CreatedAt
		})
	case SortReverseChronological:
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CreatedAt > group[j].CreatedAt
		})
	case SortCustom:
		// Stored order is creation order; nothing to do.
	}
}

// SortItems returns a new ordered view of the items under the selected
// mode. The input is never mutated.
func SortItems(items []Item, mode SortMode) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)

	switch mode {
	case SortAlphabetical:
		sort.SliceStable(sorted, func(i, j int) bool {
			return lessFold(sorted[i].Title, sorted[j].Title)
		})
	case SortChronological:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt < sorted[j].CreatedAt
		})
	case SortReverseChronological:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		})
	case SortCustom:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Order < sorted[j].Order
		})
	}

	return sorted
}

// lessFold compares titles case-insensitively, breaking ties on the
// original strings so the order is deterministic.
func lessFold(a, b string) bool {
	af, bf := strings.ToLower(a), strings.ToLower(b)
	if af != bf {
		return af < bf
	}
	return a < b
}
