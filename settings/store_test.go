package settings

import (
	"encoding/json"
	"testing"

	"trackr/internal/kv"
	"trackr/list"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(key string) ([]byte, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memStore) Set(key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func TestDefaults(t *testing.T) {
	store := NewStore(newMemStore(), nil)
	store.Hydrate()

	got := store.Current()
	if got.ListSortMode != list.SortChronological {
		t.Fatalf("expected chrono list sort, got %q", got.ListSortMode)
	}
	if got.ItemSortMode != list.SortCustom {
		t.Fatalf("expected custom item sort, got %q", got.ItemSortMode)
	}
	if got.Theme != DefaultTheme {
		t.Fatalf("expected default theme, got %q", got.Theme)
	}
	if !got.ConfirmDeletes {
		t.Fatal("expected confirm-deletes on by default")
	}
}

func TestHydrateMalformedFallsBackToDefaults(t *testing.T) {
	backing := newMemStore()
	backing.data[kv.KeySettings] = []byte("{broken")

	store := NewStore(backing, nil)
	store.Hydrate()

	if got := store.Current(); got != Default() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestHydrateRejectsInvalidValues(t *testing.T) {
	backing := newMemStore()
	backing.data[kv.KeySettings] = []byte(`{"listSortMode":"random","theme":"neon"}`)

	store := NewStore(backing, nil)
	store.Hydrate()

	got := store.Current()
	if got.ListSortMode != list.SortChronological {
		t.Fatalf("expected invalid sort mode replaced by default, got %q", got.ListSortMode)
	}
	if got.Theme != DefaultTheme {
		t.Fatalf("expected invalid theme replaced by default, got %q", got.Theme)
	}
}

func TestSettersMergeWithoutClobbering(t *testing.T) {
	backing := newMemStore()
	store := NewStore(backing, nil)
	store.Hydrate()

	store.SetTheme("forest")
	store.SetConfirmDeletes(false)

	var persisted map[string]any
	if err := json.Unmarshal(backing.data[kv.KeySettings], &persisted); err != nil {
		t.Fatalf("unmarshal persisted settings: %v", err)
	}
	if persisted["theme"] != "forest" {
		t.Fatalf("expected theme preserved after second write, got %v", persisted["theme"])
	}
	if persisted["confirmDeletes"] != false {
		t.Fatalf("expected confirmDeletes false, got %v", persisted["confirmDeletes"])
	}

	second := NewStore(backing, nil)
	second.Hydrate()
	got := second.Current()
	if got.Theme != "forest" || got.ConfirmDeletes {
		t.Fatalf("expected both changes to survive rehydration, got %+v", got)
	}
}

func TestSetSortModes(t *testing.T) {
	backing := newMemStore()
	store := NewStore(backing, nil)
	store.Hydrate()

	store.SetListSortMode(list.SortAlphabetical)
	store.SetItemSortMode(list.SortReverseChronological)

	second := NewStore(backing, nil)
	second.Hydrate()
	got := second.Current()
	if got.ListSortMode != list.SortAlphabetical {
		t.Fatalf("expected alpha list sort, got %q", got.ListSortMode)
	}
	if got.ItemSortMode != list.SortReverseChronological {
		t.Fatalf("expected reverse-chrono item sort, got %q", got.ItemSortMode)
	}
}

func TestThemeColorsFallback(t *testing.T) {
	if ThemeKey("neon").IsValid() {
		t.Fatal("expected unknown theme to be invalid")
	}

	fallback := ThemeKey("neon").Colors()
	if fallback != Themes[DefaultTheme] {
		t.Fatalf("expected default colors for unknown theme, got %+v", fallback)
	}
}

func TestThemeKeysStable(t *testing.T) {
	keys := ThemeKeys()
	if len(keys) != len(Themes) {
		t.Fatalf("expected %d theme keys, got %d", len(Themes), len(keys))
	}
	for _, key := range keys {
		if !key.IsValid() {
			t.Fatalf("expected %q to be valid", key)
		}
	}
}
