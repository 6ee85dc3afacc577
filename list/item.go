package list

// Item is a single trackable entry belonging to exactly one list.
type Item struct {
	// ID is an opaque unique identifier, assigned at creation.
	ID string `json:"id"`

	// Title is the display text.
	Title string `json:"title"`

	// Description provides optional additional context.
	Description string `json:"description,omitempty"`

	// Notes holds optional free-form (markdown) notes.
	Notes string `json:"notes,omitempty"`

	// Category is an optional grouping label.
	Category string `json:"category,omitempty"`

	// Priority is optional; empty means no priority set.
	Priority Priority `json:"priority,omitempty"`

	// DueDate is an optional due time in epoch milliseconds; zero means
	// no due date.
	DueDate int64 `json:"dueDate,omitempty"`

	// Completed marks the item as done.
	Completed bool `json:"completed"`

	// CreatedAt is the creation time in epoch milliseconds.
	CreatedAt int64 `json:"createdAt"`

	// Order is the position used by the custom sort mode. Dense per
	// list: always exactly 0..n-1 after any deletion.
	Order int `json:"order"`
}

// Priority is the importance level of an item.
type Priority string

const (
	// PriorityLow marks items that can wait.
	PriorityLow Priority = "low"

	// PriorityMedium is the suggested default when a priority is wanted.
	PriorityMedium Priority = "medium"

	// PriorityHigh marks items that should be handled first.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}
