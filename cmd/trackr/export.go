package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"trackr/internal/kv"
	"trackr/list"
	"trackr/settings"
)

// snapshot is the export file format: lists plus settings in one document.
type snapshot struct {
	Lists    []list.List       `json:"lists"`
	Settings settings.Settings `json:"settings"`
}

// marshalYAML routes through JSON so YAML output carries the same
// camelCase keys as the stored state.
func marshalYAML(value any) ([]byte, error) {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(jsonData, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}

func unmarshalSnapshot(data []byte) (snapshot, error) {
	var snap snapshot
	if jsonErr := json.Unmarshal(data, &snap); jsonErr == nil {
		return snap, nil
	}

	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return snapshot{}, fmt.Errorf("parse import: %w", err)
	}
	jsonData, err := json.Marshal(generic)
	if err != nil {
		return snapshot{}, fmt.Errorf("parse import: %w", err)
	}
	if err := json.Unmarshal(jsonData, &snap); err != nil {
		return snapshot{}, fmt.Errorf("parse import: %w", err)
	}
	return snap, nil
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all lists and settings",
	Long: `Export all lists and settings to a file, or stdout when no file
is given. The format is JSON by default, or YAML with --format yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var exportFormat string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import lists and settings from an export file",
	Long: `Import lists and settings from an export file, replacing the
current state. The format is detected from the content.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importYes bool

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format (json, yaml)")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runExport(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(strings.TrimSpace(exportFormat))
	if format != "json" && format != "yaml" {
		return fmt.Errorf("invalid format %q (valid: json, yaml)", exportFormat)
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	snap := snapshot{
		Lists:    a.lists.Lists(),
		Settings: a.settings.Current(),
	}

	var data []byte
	switch format {
	case "yaml":
		data, err = marshalYAML(snap)
	default:
		data, err = json.MarshalIndent(snap, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}

	if len(args) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("Exported %d lists to %s\n", len(snap.Lists), args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}

	snap, err := unmarshalSnapshot(data)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ok, err := a.confirmDelete(importYes, fmt.Sprintf("Replace all state with %d imported lists?", len(snap.Lists)))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Aborted.")
		return nil
	}

	listsBlob, err := json.Marshal(snap.Lists)
	if err != nil {
		return fmt.Errorf("encode lists: %w", err)
	}
	if err := a.kv.Set(kv.KeyLists, listsBlob); err != nil {
		return fmt.Errorf("write lists: %w", err)
	}

	settingsBlob, err := json.Marshal(snap.Settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := a.kv.Set(kv.KeySettings, settingsBlob); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	if err := a.kv.Delete(kv.KeyUndo); err != nil {
		a.log.Warn("clear undo record after import")
	}

	fmt.Printf("Imported %d lists\n", len(snap.Lists))
	return nil
}
