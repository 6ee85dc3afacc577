package settings

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"trackr/internal/kv"
	"trackr/list"
)

// Store holds the current preferences and persists them on every change.
//
// Each setter performs a read-merge-write against the persisted blob so
// that setting one field never erases previously persisted, unrelated
// fields. Persistence failures are logged and swallowed.
type Store struct {
	mu sync.Mutex

	kv  kv.Store
	log *zap.Logger

	current  Settings
	hydrated bool
}

// NewStore creates a settings store backed by the given key-value store.
// A nil logger defaults to a nop logger.
func NewStore(store kv.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:      store,
		log:     logger,
		current: Default(),
	}
}

// Hydrate loads the persisted settings once, defaulting any missing
// field. Malformed data is treated as absent. Subsequent calls no-op.
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}
	s.hydrated = true
	s.current = s.loadPersisted().withDefaults()
}

// Hydrated reports whether Hydrate has run.
func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// Current returns the in-memory settings.
func (s *Store) Current() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetListSortMode updates the list sort mode and persists.
func (s *Store) SetListSortMode(mode list.SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.ListSortMode = mode
	s.merge(func(p *persisted) { p.ListSortMode = &mode })
}

// SetItemSortMode updates the item sort mode and persists.
func (s *Store) SetItemSortMode(mode list.SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.ItemSortMode = mode
	s.merge(func(p *persisted) { p.ItemSortMode = &mode })
}

// SetTheme updates the theme and persists.
func (s *Store) SetTheme(theme ThemeKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Theme = theme
	s.merge(func(p *persisted) { p.Theme = &theme })
}

// SetConfirmDeletes updates the confirm-before-delete flag and persists.
func (s *Store) SetConfirmDeletes(confirm bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.ConfirmDeletes = confirm
	s.merge(func(p *persisted) { p.ConfirmDeletes = &confirm })
}

// loadPersisted reads the settings blob, treating missing or malformed
// data as empty.
func (s *Store) loadPersisted() persisted {
	data, ok, err := s.kv.Get(kv.KeySettings)
	if err != nil {
		s.log.Warn("load settings", zap.Error(err))
		return persisted{}
	}
	if !ok {
		return persisted{}
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn("parse settings blob, using defaults", zap.Error(err))
		return persisted{}
	}
	return p
}

// merge re-reads the persisted blob, applies the single-field change,
// and writes the result back. Best-effort; failures are logged.
func (s *Store) merge(apply func(*persisted)) {
	p := s.loadPersisted()
	apply(&p)

	data, err := json.Marshal(p)
	if err != nil {
		s.log.Warn("marshal settings", zap.Error(err))
		return
	}
	if err := s.kv.Set(kv.KeySettings, data); err != nil {
		s.log.Warn("save settings", zap.Error(err))
	}
}
