package list

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"trackr/internal/kv"
)

// memStore is an in-memory kv.Store for tests.
type memStore struct {
	data    map[string][]byte
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(key string) ([]byte, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memStore) Set(key string, value []byte) error {
	if m.failSet {
		return errors.New("disk full")
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func newTestStore(t *testing.T, backing *memStore) *Store {
	t.Helper()

	counter := 0
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewStore(backing, Options{
		NewID: func() string {
			counter++
			return fmt.Sprintf("id-%04d", counter)
		},
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	})
	store.Hydrate()
	return store
}

func persistedLists(t *testing.T, backing *memStore) []List {
	t.Helper()

	data, ok, err := backing.Get(kv.KeyLists)
	if err != nil || !ok {
		t.Fatalf("expected persisted lists, got ok=%v err=%v", ok, err)
	}
	var lists []List
	if err := json.Unmarshal(data, &lists); err != nil {
		t.Fatalf("unmarshal persisted lists: %v", err)
	}
	return lists
}

func TestHydrateEmptyAndMalformed(t *testing.T) {
	cases := []struct {
		name string
		blob []byte
	}{
		{name: "missing", blob: nil},
		{name: "malformed", blob: []byte("{not json")},
		{name: "wrong shape", blob: []byte(`{"lists": 3}`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backing := newMemStore()
			if tc.blob != nil {
				backing.data[kv.KeyLists] = tc.blob
			}

			store := newTestStore(t, backing)
			if !store.Hydrated() {
				t.Fatal("expected store to report hydrated")
			}
			if got := store.Lists(); len(got) != 0 {
				t.Fatalf("expected empty collection, got %d lists", len(got))
			}
		})
	}
}

func TestHydrateNormalizesNilItems(t *testing.T) {
	backing := newMemStore()
	backing.data[kv.KeyLists] = []byte(`[{"id":"a","title":"Groceries","completed":false,"createdAt":1}]`)

	store := newTestStore(t, backing)
	lists := store.Lists()
	if len(lists) != 1 {
		t.Fatalf("expected 1 list, got %d", len(lists))
	}
	if lists[0].Items == nil {
		t.Fatal("expected items to be normalized to an empty slice")
	}
}

func TestHydrateIsIdempotent(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)

	store.AddList("Groceries", AddListOptions{})
	store.Hydrate()

	if got := store.Lists(); len(got) != 1 {
		t.Fatalf("expected second hydrate to be a no-op, got %d lists", len(got))
	}
}

func TestAddListPersists(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)

	created, ok := store.AddList("Groceries", AddListOptions{
		Description: "weekly shop",
		Icon:        &Icon{Name: "cart", Color: "#0e7490"},
	})
	if !ok {
		t.Fatal("expected AddList to succeed")
	}
	if created.ID == "" || created.CreatedAt == 0 {
		t.Fatalf("expected generated id and timestamp, got %+v", created)
	}
	if created.Items == nil || len(created.Items) != 0 {
		t.Fatal("expected a new list to start with an empty item slice")
	}

	persisted := persistedLists(t, backing)
	if len(persisted) != 1 || persisted[0].Title != "Groceries" {
		t.Fatalf("unexpected persisted state: %+v", persisted)
	}
	if persisted[0].Icon == nil || persisted[0].Icon.Name != "cart" {
		t.Fatalf("expected icon to round-trip, got %+v", persisted[0].Icon)
	}
}

func TestAddListAtCapacity(t *testing.T) {
	backing := newMemStore()
	store := NewStore(backing, Options{MaxLists: 2})
	store.Hydrate()

	store.AddList("one", AddListOptions{})
	store.AddList("two", AddListOptions{})

	if _, ok := store.AddList("three", AddListOptions{}); ok {
		t.Fatal("expected AddList to refuse past the cap")
	}
	if got := store.Lists(); len(got) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(got))
	}
}

func TestUpdateListUnknownIDIsNoop(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	store.AddList("Groceries", AddListOptions{})

	if store.UpdateList("nope", "Renamed", ListUpdate{}) {
		t.Fatal("expected update of unknown id to report false")
	}
	if got := store.Lists(); got[0].Title != "Groceries" {
		t.Fatalf("expected state unchanged, got %q", got[0].Title)
	}
}

func TestUpdateListClearIcon(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	created, _ := store.AddList("Groceries", AddListOptions{Icon: &Icon{Name: "cart"}})

	if !store.UpdateList(created.ID, "Groceries", ListUpdate{ClearIcon: true}) {
		t.Fatal("expected update to succeed")
	}
	got, _ := store.Find(created.ID)
	if got.Icon != nil {
		t.Fatalf("expected icon cleared, got %+v", got.Icon)
	}
}

func TestDeleteListUndo(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	created, _ := store.AddList("Groceries", AddListOptions{})
	store.AddItem(created.ID, "Milk", "", ItemOptions{})

	if !store.DeleteList(created.ID) {
		t.Fatal("expected delete to succeed")
	}
	if got := store.Lists(); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d lists", len(got))
	}

	rec := store.UndoState()
	if rec == nil || rec.Kind != UndoDeleteList {
		t.Fatalf("expected a delete-list undo record, got %+v", rec)
	}

	if !store.Undo() {
		t.Fatal("expected undo to apply")
	}
	got := store.Lists()
	if len(got) != 1 || got[0].ID != created.ID || len(got[0].Items) != 1 {
		t.Fatalf("expected restored list with item, got %+v", got)
	}

	if store.Undo() {
		t.Fatal("expected second undo to be a no-op")
	}
}

func TestCloneListFreshIDs(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	created, _ := store.AddList("Groceries", AddListOptions{})
	item, _ := store.AddItem(created.ID, "Milk", "", ItemOptions{Priority: PriorityHigh})

	cloned, ok := store.CloneList(created.ID)
	if !ok {
		t.Fatal("expected clone to succeed")
	}

	if cloned.ID == created.ID {
		t.Fatal("expected the clone to get a new id")
	}
	if cloned.Title != "Groceries (Copy)" {
		t.Fatalf("expected copy suffix, got %q", cloned.Title)
	}
	if cloned.CreatedAt <= created.CreatedAt {
		t.Fatalf("expected a fresh timestamp, got %d <= %d", cloned.CreatedAt, created.CreatedAt)
	}
	if len(cloned.Items) != 1 {
		t.Fatalf("expected 1 cloned item, got %d", len(cloned.Items))
	}
	if cloned.Items[0].ID == item.ID {
		t.Fatal("expected cloned items to get new ids")
	}
	if cloned.Items[0].Title != "Milk" || cloned.Items[0].Priority != PriorityHigh {
		t.Fatalf("expected cloned item content preserved, got %+v", cloned.Items[0])
	}
}

func TestCloneListAtCapacity(t *testing.T) {
	backing := newMemStore()
	store := NewStore(backing, Options{MaxLists: 1})
	store.Hydrate()
	created, _ := store.AddList("Groceries", AddListOptions{})

	if _, ok := store.CloneList(created.ID); ok {
		t.Fatal("expected clone to refuse past the cap")
	}
}

func TestTogglePinUndo(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	created, _ := store.AddList("Groceries", AddListOptions{})

	pinned, ok := store.TogglePinList(created.ID)
	if !ok || !pinned.Pinned {
		t.Fatalf("expected pin, got ok=%v pinned=%+v", ok, pinned)
	}

	rec := store.UndoState()
	if rec == nil || rec.Kind != UndoTogglePin {
		t.Fatalf("expected a toggle-pin undo record, got %+v", rec)
	}

	store.Undo()
	got, _ := store.Find(created.ID)
	if got.Pinned {
		t.Fatal("expected undo to restore the unpinned state")
	}
}

func TestAddItemOrderAndUndo(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	created, _ := store.AddList("Groceries", AddListOptions{})

	first, _ := store.AddItem(created.ID, "Milk", "", ItemOptions{})
	second, _ := store.AddItem(created.ID, "Eggs", "dozen", ItemOptions{})

	if first.Order != 0 || second.Order != 1 {
		t.Fatalf("expected orders 0 and 1, got %d and %d", first.Order, second.Order)
	}
	if second.Description != "dozen" {
		t.Fatalf("expected description set, got %q", second.Description)
	}

	rec := store.UndoState()
	if rec == nil || rec.Kind != UndoAddItem {
		t.Fatalf("expected an add-item undo record, got %+v", rec)
	}

	store.Undo()
	got, _ := store.Find(created.ID)
	if len(got.Items) != 1 || got.Items[0].Title != "Milk" {
		t.Fatalf("expected undo to remove the second item, got %+v", got.Items)
	}
}

func TestAddItemUnknownList(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)

	if _, ok := store.AddItem("nope", "Milk", "", ItemOptions{}); ok {
		t.Fatal("expected add to an unknown list to report false")
	}
}

func TestUpdateItemMergesFields(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	created, _ := store.AddList("Groceries", AddListOptions{})
	item, _ := store.AddItem(created.ID, "Milk", "", ItemOptions{Category: "dairy"})

	notes := "check the date"
	priority := PriorityHigh
	updated, ok := store.UpdateItem(created.ID, item.ID, ItemUpdate{
		Notes:    &notes,
		Priority: &priority,
	})
	if !ok {
		t.Fatal("expected update to succeed")
	}
	if updated.Notes != notes || updated.Priority != PriorityHigh {
		t.Fatalf("expected merged fields, got %+v", updated)
	}
	if updated.Category != "dairy" || updated.Title != "Milk" {
		t.Fatalf("expected untouched fields preserved, got %+v", updated)
	}
}

func TestToggleItem(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	created, _ := store.AddList("Groceries", AddListOptions{})
	item, _ := store.AddItem(created.ID, "Milk", "", ItemOptions{})

	toggled, ok := store.ToggleItem(created.ID, item.ID)
	if !ok || !toggled.Completed {
		t.Fatalf("expected completion, got ok=%v item=%+v", ok, toggled)
	}

	toggled, _ = store.ToggleItem(created.ID, item.ID)
	if toggled.Completed {
		t.Fatal("expected a second toggle to reopen the item")
	}
}

func TestDeleteItemRenumbersDense(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	created, _ := store.AddList("Groceries", AddListOptions{})
	store.AddItem(created.ID, "Milk", "", ItemOptions{})
	second, _ := store.AddItem(created.ID, "Eggs", "", ItemOptions{})
	store.AddItem(created.ID, "Bread", "", ItemOptions{})

	if !store.DeleteItem(created.ID, second.ID) {
		t.Fatal("expected delete to succeed")
	}

	got, _ := store.Find(created.ID)
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	for i, item := range got.Items {
		if item.Order != i {
			t.Fatalf("expected dense order at %d, got %d", i, item.Order)
		}
	}

	store.Undo()
	got, _ = store.Find(created.ID)
	if len(got.Items) != 3 || got.Items[1].Title != "Eggs" {
		t.Fatalf("expected undo to restore Eggs at position 1, got %+v", got.Items)
	}
}

func TestGroceriesScenario(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)

	created, _ := store.AddList("Groceries", AddListOptions{})
	milk, _ := store.AddItem(created.ID, "Milk", "", ItemOptions{})
	store.AddItem(created.ID, "Eggs", "", ItemOptions{})

	if !store.DeleteItem(created.ID, milk.ID) {
		t.Fatal("expected delete to succeed")
	}

	got, _ := store.Find(created.ID)
	if len(got.Items) != 1 || got.Items[0].Title != "Eggs" || got.Items[0].Order != 0 {
		t.Fatalf("expected Eggs at order 0, got %+v", got.Items)
	}
}

func TestReorderItems(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	created, _ := store.AddList("Groceries", AddListOptions{})
	store.AddItem(created.ID, "Milk", "", ItemOptions{})
	store.AddItem(created.ID, "Eggs", "", ItemOptions{})
	store.AddItem(created.ID, "Bread", "", ItemOptions{})

	current, _ := store.Find(created.ID)
	moved, ok := MoveItem(current.Items, current.Items[2].ID, 0)
	if !ok {
		t.Fatal("expected move to succeed")
	}
	if !store.ReorderItems(created.ID, moved) {
		t.Fatal("expected reorder to succeed")
	}

	got, _ := store.Find(created.ID)
	titles := []string{got.Items[0].Title, got.Items[1].Title, got.Items[2].Title}
	want := []string{"Bread", "Milk", "Eggs"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, titles)
		}
		if got.Items[i].Order != i {
			t.Fatalf("expected dense order at %d, got %d", i, got.Items[i].Order)
		}
	}
}

func TestListsReturnsDeepCopy(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	created, _ := store.AddList("Groceries", AddListOptions{})
	store.AddItem(created.ID, "Milk", "", ItemOptions{})

	view := store.Lists()
	view[0].Title = "Tampered"
	view[0].Items[0].Title = "Tampered"

	got, _ := store.Find(created.ID)
	if got.Title != "Groceries" || got.Items[0].Title != "Milk" {
		t.Fatalf("expected store state untouched by caller mutation, got %+v", got)
	}
}

func TestPersistFailureKeepsMemoryAhead(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	store.AddList("Groceries", AddListOptions{})

	backing.failSet = true
	if _, ok := store.AddList("Errands", AddListOptions{}); !ok {
		t.Fatal("expected the mutation to succeed despite the write failure")
	}

	if got := store.Lists(); len(got) != 2 {
		t.Fatalf("expected 2 lists in memory, got %d", len(got))
	}
	if persisted := persistedLists(t, backing); len(persisted) != 1 {
		t.Fatalf("expected durable state to lag at 1 list, got %d", len(persisted))
	}

	backing.failSet = false
	store.TogglePinList(store.Lists()[0].ID)
	if persisted := persistedLists(t, backing); len(persisted) != 2 {
		t.Fatalf("expected the next successful write to catch up, got %d lists", len(persisted))
	}
}

func TestSeedUndoAcrossStores(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	created, _ := store.AddList("Groceries", AddListOptions{})
	store.DeleteList(created.ID)

	rec := store.UndoState()
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal undo record: %v", err)
	}

	var restored UndoRecord
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal undo record: %v", err)
	}

	second := newTestStore(t, backing)
	second.SeedUndo(&restored)
	if !second.Undo() {
		t.Fatal("expected seeded undo to apply")
	}
	if got := second.Lists(); len(got) != 1 || got[0].Title != "Groceries" {
		t.Fatalf("expected the deleted list back, got %+v", got)
	}
}

func TestStateRoundTrip(t *testing.T) {
	backing := newMemStore()
	store := newTestStore(t, backing)
	created, _ := store.AddList("Groceries", AddListOptions{Description: "weekly"})
	store.AddItem(created.ID, "Milk", "whole", ItemOptions{
		Notes:    "check the date",
		Category: "dairy",
		Priority: PriorityHigh,
		DueDate:  1767225600000,
	})
	store.TogglePinList(created.ID)

	second := NewStore(backing, Options{})
	second.Hydrate()

	want := store.Lists()
	got := second.Lists()
	wantJSON, _ := json.Marshal(want)
	gotJSON, _ := json.Marshal(got)
	if string(wantJSON) != string(gotJSON) {
		t.Fatalf("round trip mismatch:\nwant %s\ngot  %s", wantJSON, gotJSON)
	}
}
