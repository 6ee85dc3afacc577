// Package kv provides the key-value persistence layer backing the stores.
//
// State is a small set of independently written JSON blobs under
// well-known keys. Two backends exist: one file per key (the default),
// and a single-table SQLite database.
package kv

// Well-known keys for the persisted blobs.
const (
	// KeyLists holds the full list collection as a JSON array.
	KeyLists = "lists"

	// KeySettings holds the settings record as a JSON object.
	KeySettings = "settings"

	// KeyUndo holds the serialized undo record, when one exists.
	KeyUndo = "undo"
)

// Store is an opaque key-value store of JSON blobs.
//
// Writes are atomic per key. Readers treat a missing key and a present
// key identically to how the persisted-state contract demands: absent
// means "no data", and callers fall back to defaults.
type Store interface {
	// Get returns the blob stored under key. The second return is false
	// when the key is absent.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous blob.
	Set(key string, value []byte) error

	// Delete removes the blob stored under key. Deleting an absent key
	// is not an error.
	Delete(key string) error
}
