package settings

import (
	"fmt"
	"strings"

	internalstrings "trackr/internal/strings"
)

// ThemeKey names an entry in the static theme table.
type ThemeKey string

// ThemeColors is one entry of the theme table. Colors are hex strings.
type ThemeColors struct {
	Name          string
	Primary       string
	PrimaryLight  string
	Accent        string
	Background    string
	Surface       string
	Text          string
	TextSecondary string
}

// Themes is the static theme table.
var Themes = map[ThemeKey]ThemeColors{
	"ocean": {
		Name:          "Ocean",
		Primary:       "#1e3a8a",
		PrimaryLight:  "#3b82f6",
		Accent:        "#0ea5e9",
		Background:    "#0f172a",
		Surface:       "#1e293b",
		Text:          "#f1f5f9",
		TextSecondary: "#cbd5e1",
	},
	"forest": {
		Name:          "Forest",
		Primary:       "#15803d",
		PrimaryLight:  "#22c55e",
		Accent:        "#10b981",
		Background:    "#051e16",
		Surface:       "#1a3a2a",
		Text:          "#f1f5f9",
		TextSecondary: "#cbd5e1",
	},
	"sunset": {
		Name:          "Sunset",
		Primary:       "#b91c1c",
		PrimaryLight:  "#ef4444",
		Accent:        "#f97316",
		Background:    "#3f0609",
		Surface:       "#7f1d1d",
		Text:          "#fef2f2",
		TextSecondary: "#fed7aa",
	},
	"slate": {
		Name:          "Slate",
		Primary:       "#334155",
		PrimaryLight:  "#64748b",
		Accent:        "#94a3b8",
		Background:    "#0f172a",
		Surface:       "#1e293b",
		Text:          "#f1f5f9",
		TextSecondary: "#cbd5e1",
	},
	"pikachu": {
		Name:          "Pikachu",
		Primary:       "#dc2626",
		PrimaryLight:  "#fbbf24",
		Accent:        "#f59e0b",
		Background:    "#1f1410",
		Surface:       "#3d2817",
		Text:          "#fef3c7",
		TextSecondary: "#fcd34d",
	},
	"lavender": {
		Name:          "Lavender",
		Primary:       "#6d28d9",
		PrimaryLight:  "#a78bfa",
		Accent:        "#c084fc",
		Background:    "#1e0a3f",
		Surface:       "#3d1d56",
		Text:          "#f3e8ff",
		TextSecondary: "#e9d5ff",
	},
	"coral": {
		Name:          "Coral",
		Primary:       "#be185d",
		PrimaryLight:  "#f472b6",
		Accent:        "#fb7185",
		Background:    "#3d0a3d",
		Surface:       "#6b1f47",
		Text:          "#fce7f3",
		TextSecondary: "#fbcfe8",
	},
}

// ThemeKeys returns the theme keys in a fixed display order.
func ThemeKeys() []ThemeKey {
	return []ThemeKey{"ocean", "forest", "sunset", "slate", "pikachu", "lavender", "coral"}
}

// IsValid returns true if the key names a known theme.
func (k ThemeKey) IsValid() bool {
	_, ok := Themes[k]
	return ok
}

// Colors returns the theme table entry for the key, falling back to the
// default theme for unknown keys.
func (k ThemeKey) Colors() ThemeColors {
	if colors, ok := Themes[k]; ok {
		return colors
	}
	return Themes[DefaultTheme]
}

// ParseThemeKey converts user input to a ThemeKey.
func ParseThemeKey(value string) (ThemeKey, error) {
	key := ThemeKey(internalstrings.NormalizeLowerTrimSpace(value))
	if !key.IsValid() {
		names := make([]string, 0, len(Themes))
		for _, k := range ThemeKeys() {
			names = append(names, string(k))
		}
		return "", fmt.Errorf("unknown theme %q (valid: %s)", value, strings.Join(names, ", "))
	}
	return key, nil
}
