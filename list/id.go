package list

import "github.com/google/uuid"

// NewID generates a fresh opaque identifier for a list or item.
func NewID() string {
	return uuid.NewString()
}
