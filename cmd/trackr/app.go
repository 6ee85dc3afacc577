package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"trackr/internal/config"
	"trackr/internal/kv"
	"trackr/internal/logging"
	"trackr/internal/ui"
	"trackr/list"
	"trackr/settings"
)

// app bundles the stores and ambient services every command needs.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	kv       kv.Store
	lists    *list.Store
	settings *settings.Store

	sqlite *kv.SQLiteStore
}

// openApp loads config, opens the configured backend, and hydrates both
// stores. Callers must Close the returned app.
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logging.New(rootVerbose)

	if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	var store kv.Store
	var sqlite *kv.SQLiteStore
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		sqlite, err = kv.OpenSQLite(filepath.Join(cfg.Storage.Dir, "trackr.db"))
		if err != nil {
			return nil, err
		}
		store = sqlite
	default:
		store = kv.NewFileStore(cfg.Storage.Dir)
	}

	lists := list.NewStore(store, list.Options{
		MaxLists: cfg.Lists.Max,
		Logger:   log,
	})
	lists.Hydrate()

	settingsStore := settings.NewStore(store, log)
	settingsStore.Hydrate()

	a := &app{
		cfg:      cfg,
		log:      log,
		kv:       store,
		lists:    lists,
		settings: settingsStore,
		sqlite:   sqlite,
	}
	a.seedUndo()
	return a, nil
}

// Close flushes the logger and releases the backend.
func (a *app) Close() {
	logging.Sync(a.log)
	if a.sqlite != nil {
		if err := a.sqlite.Close(); err != nil {
			a.log.Warn("close sqlite", zap.Error(err))
		}
	}
}

// seedUndo loads the persisted undo record, if any, into the store so a
// fresh process can still undo the previous invocation's change.
func (a *app) seedUndo() {
	data, ok, err := a.kv.Get(kv.KeyUndo)
	if err != nil || !ok {
		return
	}

	var rec list.UndoRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		a.log.Warn("discarding malformed undo record", zap.Error(err))
		return
	}
	a.lists.SeedUndo(&rec)
}

// saveUndo persists the store's current undo record across invocations.
func (a *app) saveUndo() {
	rec := a.lists.UndoState()
	if rec == nil {
		if err := a.kv.Delete(kv.KeyUndo); err != nil {
			a.log.Warn("clear undo record", zap.Error(err))
		}
		return
	}

	data, err := json.Marshal(rec)
	if err != nil {
		a.log.Warn("encode undo record", zap.Error(err))
		return
	}
	if err := a.kv.Set(kv.KeyUndo, data); err != nil {
		a.log.Warn("persist undo record", zap.Error(err))
	}
}

// styles returns the lipgloss style set for the active theme.
func (a *app) styles() ui.Styles {
	return ui.StylesFor(a.settings.Current().Theme.Colors())
}
