package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"trackr/internal/ui"
	"trackr/list"
	"trackr/settings"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Short:   "View and change settings",
	Aliases: []string{"config"},
}

// settings show
var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsShowJSON bool

// settings set
var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting.

Keys:
  list-sort        chrono, reverse-chrono, alpha
  item-sort        chrono, reverse-chrono, alpha, custom
  theme            ` + themeKeyList() + `
  confirm-deletes  true, false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)

	settingsShowCmd.Flags().BoolVar(&settingsShowJSON, "json", false, "Output as JSON")
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	current := a.settings.Current()

	if settingsShowJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(current)
	}

	builder := ui.NewTableBuilder([]string{"KEY", "VALUE"}, 4)
	builder.AddRow([]string{"list-sort", string(current.ListSortMode)})
	builder.AddRow([]string{"item-sort", string(current.ItemSortMode)})
	builder.AddRow([]string{"theme", string(current.Theme)})
	builder.AddRow([]string{"confirm-deletes", strconv.FormatBool(current.ConfirmDeletes)})
	fmt.Print(builder.String())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	switch key {
	case "list-sort":
		mode, err := list.ParseSortMode(value)
		if err != nil {
			return err
		}
		if mode == list.SortCustom {
			return fmt.Errorf("invalid list sort mode %q (valid: chrono, reverse-chrono, alpha)", value)
		}
		a.settings.SetListSortMode(mode)
	case "item-sort":
		mode, err := list.ParseSortMode(value)
		if err != nil {
			return err
		}
		a.settings.SetItemSortMode(mode)
	case "theme":
		theme, err := settings.ParseThemeKey(value)
		if err != nil {
			return err
		}
		a.settings.SetTheme(theme)
	case "confirm-deletes":
		confirm, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", value)
		}
		a.settings.SetConfirmDeletes(confirm)
	default:
		return fmt.Errorf("unknown setting %q (valid: list-sort, item-sort, theme, confirm-deletes)", key)
	}

	fmt.Printf("Set %s to %s\n", key, value)
	return nil
}

func themeKeyList() string {
	keys := settings.ThemeKeys()
	joined := ""
	for i, key := range keys {
		if i > 0 {
			joined += ", "
		}
		joined += string(key)
	}
	return joined
}
