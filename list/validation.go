package list

import (
	"errors"
	"fmt"
	"strings"

	internalstrings "trackr/internal/strings"
)

// MaxTitleLength is the maximum allowed length for a list or item title.
const MaxTitleLength = 500

var (
	// ErrEmptyTitle is returned when a title is empty after trimming.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidPriority is returned when an unknown priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidSortMode is returned when an unknown sort mode is provided.
	ErrInvalidSortMode = errors.New("invalid sort mode")

	// ErrIDNotFound is returned when no ID matches a given prefix.
	ErrIDNotFound = errors.New("no matching id")

	// ErrAmbiguousIDPrefix is returned when an ID prefix matches more
	// than one ID.
	ErrAmbiguousIDPrefix = errors.New("ambiguous id prefix")
)

// ValidateTitle checks that a title is non-empty after trimming and not
// over-long. The store itself accepts titles as given; this is for the
// input boundary (CLI flags, editor forms).
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ParsePriority converts user input to a Priority. Empty input means no
// priority.
func ParsePriority(value string) (Priority, error) {
	priority := Priority(internalstrings.NormalizeLowerTrimSpace(value))
	if priority == "" {
		return "", nil
	}
	if !priority.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: low, medium, high)", ErrInvalidPriority, value)
	}
	return priority, nil
}
