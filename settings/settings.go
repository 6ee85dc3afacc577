// Package settings holds the small scalar user preferences: sort modes,
// theme, and the confirm-before-delete flag. Preferences live in memory
// and persist to their own key-value blob on every change.
package settings

import "trackr/list"

// Defaults applied when a field is missing from the persisted blob.
const (
	DefaultListSortMode = list.SortChronological
	DefaultItemSortMode = list.SortCustom
	DefaultTheme        = ThemeKey("ocean")
)

// Settings is the process-wide preferences record.
type Settings struct {
	// ListSortMode orders the list overview.
	ListSortMode list.SortMode `json:"listSortMode"`

	// ItemSortMode orders items within a list.
	ItemSortMode list.SortMode `json:"itemSortMode"`

	// Theme keys into the static theme table.
	Theme ThemeKey `json:"theme"`

	// ConfirmDeletes asks before destructive actions.
	ConfirmDeletes bool `json:"confirmDeletes"`
}

// Default returns the settings used when nothing is persisted.
func Default() Settings {
	return Settings{
		ListSortMode:   DefaultListSortMode,
		ItemSortMode:   DefaultItemSortMode,
		Theme:          DefaultTheme,
		ConfirmDeletes: true,
	}
}

// persisted is the wire form of the settings blob. Every field is
// optional so one field can be written without clobbering the others;
// missing fields fall back to their defaults on read.
type persisted struct {
	ListSortMode   *list.SortMode `json:"listSortMode,omitempty"`
	ItemSortMode   *list.SortMode `json:"itemSortMode,omitempty"`
	Theme          *ThemeKey      `json:"theme,omitempty"`
	ConfirmDeletes *bool          `json:"confirmDeletes,omitempty"`
}

func (p persisted) withDefaults() Settings {
	s := Default()
	if p.ListSortMode != nil && p.ListSortMode.IsValid() {
		s.ListSortMode = *p.ListSortMode
	}
	if p.ItemSortMode != nil && p.ItemSortMode.IsValid() {
		s.ItemSortMode = *p.ItemSortMode
	}
	if p.Theme != nil && p.Theme.IsValid() {
		s.Theme = *p.Theme
	}
	if p.ConfirmDeletes != nil {
		s.ConfirmDeletes = *p.ConfirmDeletes
	}
	return s
}
