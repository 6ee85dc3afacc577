package list

// UndoKind identifies the class of action an undo record reverses.
type UndoKind string

const (
	// UndoDeleteList reverses a list deletion.
	UndoDeleteList UndoKind = "delete-list"

	// UndoDeleteItem reverses an item deletion.
	UndoDeleteItem UndoKind = "delete-item"

	// UndoTogglePin reverses a pin/unpin.
	UndoTogglePin UndoKind = "toggle-pin"

	// UndoAddItem reverses an item addition.
	UndoAddItem UndoKind = "add-item"
)

// UndoRecord is the single most recent compensating action. It captures
// the full pre-action collection as a snapshot, so applying it is a
// wholesale restore. The record is serializable so the presentation
// layer can carry it across process boundaries if it wants to.
type UndoRecord struct {
	Kind     UndoKind `json:"kind"`
	Snapshot []List   `json:"snapshot"`
}

func newUndoRecord(kind UndoKind, prior []List) *UndoRecord {
	return &UndoRecord{Kind: kind, Snapshot: CloneLists(prior)}
}
