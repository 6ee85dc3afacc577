package list

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"trackr/internal/kv"
)

// DefaultMaxLists caps how many lists the store will hold. The cap is
// enforced by the store; AddList and CloneList no-op at capacity.
const DefaultMaxLists = 100

// Store is the single source of truth for all lists and their items.
//
// State lives in memory and is mirrored to the key-value store after
// every mutation. Persistence is best-effort: failures are logged and
// swallowed, never returned to the caller, so the in-memory state can
// briefly run ahead of what is durably saved.
type Store struct {
	mu sync.Mutex

	kv       kv.Store
	log      *zap.Logger
	maxLists int
	now      func() time.Time
	newID    func() string

	lists    []List
	hydrated bool
	undo     *UndoRecord
}

// Options configures a Store. The zero value is usable.
type Options struct {
	// MaxLists overrides DefaultMaxLists when positive.
	MaxLists int

	// Logger receives persistence diagnostics. Defaults to a nop logger.
	Logger *zap.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time

	// NewID overrides ID generation, for tests.
	NewID func() string
}

// NewStore creates a store backed by the given key-value store. Call
// Hydrate before reading state.
func NewStore(store kv.Store, opts Options) *Store {
	if opts.MaxLists <= 0 {
		opts.MaxLists = DefaultMaxLists
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = NewID
	}
	return &Store{
		kv:       store,
		log:      opts.Logger,
		maxLists: opts.MaxLists,
		now:      opts.Now,
		newID:    opts.NewID,
	}
}

// Hydrate loads the persisted collection once. A missing or malformed
// blob falls back to an empty collection; the failure is logged, never
// surfaced. Subsequent calls are no-ops.
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}
	s.hydrated = true

	data, ok, err := s.kv.Get(kv.KeyLists)
	if err != nil {
		s.log.Warn("load lists", zap.Error(err))
		s.lists = []List{}
		return
	}
	if !ok {
		s.lists = []List{}
		return
	}

	var lists []List
	if err := json.Unmarshal(data, &lists); err != nil {
		s.log.Warn("parse lists blob, starting empty", zap.Error(err))
		s.lists = []List{}
		return
	}

	// Optional-field defaulting at the load boundary.
	for i := range lists {
		if lists[i].Items == nil {
			lists[i].Items = []Item{}
		}
	}
	s.lists = lists
}

// Hydrated reports whether Hydrate has run. The presentation layer uses
// it to gate rendering.
func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// MaxLists returns the configured list cap.
func (s *Store) MaxLists() int {
	return s.maxLists
}

// Lists returns a deep copy of the current collection.
func (s *Store) Lists() []List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CloneLists(s.lists)
}

// Find returns a copy of the list with the given ID.
func (s *Store) Find(id string) (List, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lists {
		if l.ID == id {
			return cloneList(l), true
		}
	}
	return List{}, false
}

// AddListOptions carries the optional fields of a new list.
type AddListOptions struct {
	Description string
	Icon        *Icon
}

// AddList appends a new list with a fresh ID. Returns false without
// mutating anything when the collection is at capacity.
func (s *Store) AddList(title string, opts AddListOptions) (*List, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lists) >= s.maxLists {
		return nil, false
	}

	added := List{
		ID:          s.newID(),
		Title:       title,
		Description: opts.Description,
		Icon:        opts.Icon,
		Items:       []Item{},
		CreatedAt:   s.now().UnixMilli(),
	}
	s.lists = transitionAddList(s.lists, added)
	s.persist()

	result := cloneList(added)
	return &result, true
}

// ListUpdate carries the optional fields of a list update. Nil pointers
// mean "leave unchanged".
type ListUpdate struct {
	Description *string
	Icon        *Icon
	ClearIcon   bool
}

// UpdateList replaces the title (and any provided optional fields) of
// the list matching id. No-op if the id is unknown.
func (s *Store) UpdateList(id, title string, upd ListUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, found := transitionUpdateList(s.lists, id, title, upd)
	if !found {
		return false
	}
	s.lists = next
	s.persist()
	return true
}

// DeleteList removes the list and all its items, recording an undo
// entry that restores the pre-deletion collection.
func (s *Store) DeleteList(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, found := transitionDeleteList(s.lists, id)
	if !found {
		return false
	}
	s.undo = newUndoRecord(UndoDeleteList, s.lists)
	s.lists = next
	s.persist()
	return true
}

// CloneCopySuffix is appended to a cloned list's title.
const CloneCopySuffix = " (Copy)"

// CloneList duplicates a list under a new ID with a fresh creation time;
// items are full copies with new IDs but identical content and order.
// No-op if the id is unknown or the collection is at capacity.
func (s *Store) CloneList(id string) (*List, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lists) >= s.maxLists {
		return nil, false
	}

	var source *List
	for i := range s.lists {
		if s.lists[i].ID == id {
			source = &s.lists[i]
			break
		}
	}
	if source == nil {
		return nil, false
	}

	cloned := cloneList(*source)
	cloned.ID = s.newID()
	cloned.Title = source.Title + CloneCopySuffix
	cloned.CreatedAt = s.now().UnixMilli()
	for i := range cloned.Items {
		cloned.Items[i].ID = s.newID()
	}

	s.lists = transitionAddList(s.lists, cloned)
	s.persist()

	result := cloneList(cloned)
	return &result, true
}

// TogglePinList flips the pinned flag, recording an undo entry.
func (s *Store) TogglePinList(id string) (*List, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, found := transitionTogglePin(s.lists, id)
	if !found {
		return nil, false
	}
	s.undo = newUndoRecord(UndoTogglePin, s.lists)
	s.lists = next
	s.persist()

	for _, l := range s.lists {
		if l.ID == id {
			result := cloneList(l)
			return &result, true
		}
	}
	return nil, false
}

// ItemOptions carries the optional fields of a new item.
type ItemOptions struct {
	Notes    string
	Category string
	Priority Priority
	DueDate  int64
}

// AddItem appends a new item to the list matching listID, with order set
// to the current item count. Records an undo entry. No-op if the list is
// unknown.
func (s *Store) AddItem(listID, title, description string, opts ItemOptions) (*Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Notes:       opts.Notes,
		Category:    opts.Category,
		Priority:    opts.Priority,
		DueDate:     opts.DueDate,
		CreatedAt:   s.now().UnixMilli(),
	}

	prior := s.lists
	next, found := transitionAddItem(s.lists, listID, item)
	if !found {
		return nil, false
	}
	s.undo = newUndoRecord(UndoAddItem, prior)
	s.lists = next
	s.persist()

	for _, l := range s.lists {
		if l.ID == listID {
			result := l.Items[len(l.Items)-1]
			return &result, true
		}
	}
	return nil, false
}

// ItemUpdate carries the optional fields of an item update. Nil pointers
// mean "leave unchanged".
type ItemUpdate struct {
	Title       *string
	Description *string
	Notes       *string
	Category    *string
	Priority    *Priority
	DueDate     *int64
}

// UpdateItem shallow-merges the provided fields into the matching item.
// Not undo-tracked. No-op if the list or item is unknown.
func (s *Store) UpdateItem(listID, itemID string, upd ItemUpdate) (*Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, found := transitionUpdateItem(s.lists, listID, itemID, upd)
	if !found {
		return nil, false
	}
	s.lists = next
	s.persist()
	return s.findItemLocked(listID, itemID)
}

// ToggleItem flips the completed flag. Not undo-tracked.
func (s *Store) ToggleItem(listID, itemID string) (*Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, found := transitionToggleItem(s.lists, listID, itemID)
	if !found {
		return nil, false
	}
	s.lists = next
	s.persist()
	return s.findItemLocked(listID, itemID)
}

// DeleteItem removes the item and renumbers the remaining items' order
// densely from 0. Records an undo entry.
func (s *Store) DeleteItem(listID, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, found := transitionDeleteItem(s.lists, listID, itemID)
	if !found {
		return false
	}
	s.undo = newUndoRecord(UndoDeleteItem, s.lists)
	s.lists = next
	s.persist()
	return true
}

// ReorderItems replaces the list's items wholesale with the supplied
// ordered collection. The caller is responsible for the order values.
// Not undo-tracked.
func (s *Store) ReorderItems(listID string, items []Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, found := transitionReorderItems(s.lists, listID, items)
	if !found {
		return false
	}
	s.lists = next
	s.persist()
	return true
}

// Undo applies the pending undo record, restoring the prior collection,
// and clears the slot. Returns false when no record exists.
func (s *Store) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.undo == nil {
		return false
	}
	s.lists = s.undo.Snapshot
	s.undo = nil
	s.persist()
	return true
}

// UndoState returns a copy of the pending undo record, or nil.
func (s *Store) UndoState() *UndoRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.undo == nil {
		return nil
	}
	return &UndoRecord{Kind: s.undo.Kind, Snapshot: CloneLists(s.undo.Snapshot)}
}

// SeedUndo installs an undo record, overwriting any pending one. The
// presentation layer uses it to carry a record across invocations.
func (s *Store) SeedUndo(rec *UndoRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec == nil {
		s.undo = nil
		return
	}
	s.undo = &UndoRecord{Kind: rec.Kind, Snapshot: CloneLists(rec.Snapshot)}
}

func (s *Store) findItemLocked(listID, itemID string) (*Item, bool) {
	for _, l := range s.lists {
		if l.ID != listID {
			continue
		}
		for _, item := range l.Items {
			if item.ID == itemID {
				result := item
				return &result, true
			}
		}
	}
	return nil, false
}

// persist mirrors the full collection to the key-value store.
// Best-effort: errors are logged and swallowed, leaving memory ahead of
// durable state until the next successful write.
func (s *Store) persist() {
	data, err := json.Marshal(s.lists)
	if err != nil {
		s.log.Warn("marshal lists", zap.Error(err))
		return
	}
	if err := s.kv.Set(kv.KeyLists, data); err != nil {
		s.log.Warn("save lists", zap.Error(err))
	}
}
