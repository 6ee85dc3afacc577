package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"trackr/internal/listflags"
	"trackr/list"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "Manage lists",
	Aliases: []string{"lists"},
}

// list create
var listCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new list",
	Args:  cobra.ExactArgs(1),
	RunE:  runListCreate,
}

var (
	listCreateDescription string
	listCreateIcon        string
	listCreateIconColor   string
)

// list update
var listUpdateCmd = &cobra.Command{
	Use:     "update <id>",
	Short:   "Update a list",
	Aliases: []string{"edit"},
	Args:    cobra.ExactArgs(1),
	RunE:    runListUpdate,
}

var (
	listUpdateTitle       string
	listUpdateDescription string
	listUpdateIcon        string
	listUpdateIconColor   string
	listUpdateClearIcon   bool
)

// list delete
var listDeleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Short:   "Delete one or more lists",
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runListDelete,
}

var listDeleteYes bool

// list clone
var listCloneCmd = &cobra.Command{
	Use:   "clone <id>",
	Short: "Duplicate a list and its items",
	Args:  cobra.ExactArgs(1),
	RunE:  runListClone,
}

// list pin
var listPinCmd = &cobra.Command{
	Use:     "pin <id>",
	Short:   "Toggle a list's pinned state",
	Aliases: []string{"unpin"},
	Args:    cobra.ExactArgs(1),
	RunE:    runListPin,
}

// list show
var listShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a list and its items",
	Args:  cobra.ExactArgs(1),
	RunE:  runListShow,
}

var (
	listShowJSON bool
	listShowAll  bool
)

// list ls
var listLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all lists",
	Args:  cobra.NoArgs,
	RunE:  runListLs,
}

var listLsJSON bool

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listCreateCmd, listUpdateCmd, listDeleteCmd, listCloneCmd, listPinCmd, listShowCmd, listLsCmd)

	listCreateCmd.Flags().StringVarP(&listCreateDescription, "description", "d", "", "List description")
	listCreateCmd.Flags().StringVar(&listCreateIcon, "icon", "", "Icon name")
	listCreateCmd.Flags().StringVar(&listCreateIconColor, "icon-color", "", "Icon color (hex)")

	listUpdateCmd.Flags().StringVar(&listUpdateTitle, "title", "", "New title")
	listUpdateCmd.Flags().StringVarP(&listUpdateDescription, "description", "d", "", "New description")
	listUpdateCmd.Flags().StringVar(&listUpdateIcon, "icon", "", "New icon name")
	listUpdateCmd.Flags().StringVar(&listUpdateIconColor, "icon-color", "", "New icon color (hex)")
	listUpdateCmd.Flags().BoolVar(&listUpdateClearIcon, "clear-icon", false, "Remove the icon")

	listDeleteCmd.Flags().BoolVarP(&listDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	listShowCmd.Flags().BoolVar(&listShowJSON, "json", false, "Output as JSON")
	listflags.AddAllFlag(listShowCmd, &listShowAll)

	listLsCmd.Flags().BoolVar(&listLsJSON, "json", false, "Output as JSON")
}

func runListCreate(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(args[0])
	if err := list.ValidateTitle(title); err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	opts := list.AddListOptions{Description: listCreateDescription}
	if listCreateIcon != "" {
		opts.Icon = &list.Icon{Name: listCreateIcon, Color: listCreateIconColor}
	}

	created, ok := a.lists.AddList(title, opts)
	if !ok {
		return fmt.Errorf("list limit reached (%d)", a.lists.MaxLists())
	}

	a.saveUndo()
	fmt.Printf("Created list %s\n", created.ID)
	return nil
}

func runListUpdate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.resolveListID(args[0])
	if err != nil {
		return err
	}
	current, _ := a.lists.Find(id)

	title := current.Title
	if cmd.Flags().Changed("title") {
		title = strings.TrimSpace(listUpdateTitle)
		if err := list.ValidateTitle(title); err != nil {
			return err
		}
	}

	upd := list.ListUpdate{ClearIcon: listUpdateClearIcon}
	if cmd.Flags().Changed("description") {
		upd.Description = &listUpdateDescription
	}
	if cmd.Flags().Changed("icon") || cmd.Flags().Changed("icon-color") {
		icon := list.Icon{Name: listUpdateIcon, Color: listUpdateIconColor}
		if current.Icon != nil {
			if !cmd.Flags().Changed("icon") {
				icon.Name = current.Icon.Name
			}
			if !cmd.Flags().Changed("icon-color") {
				icon.Color = current.Icon.Color
			}
		}
		upd.Icon = &icon
	}

	if !a.lists.UpdateList(id, title, upd) {
		return fmt.Errorf("list %s not found", args[0])
	}

	a.saveUndo()
	fmt.Printf("Updated list %s\n", id)
	return nil
}

func runListDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	for _, arg := range args {
		id, err := a.resolveListID(arg)
		if err != nil {
			return err
		}

		target, _ := a.lists.Find(id)
		ok, err := a.confirmDelete(listDeleteYes, fmt.Sprintf("Delete list %q?", target.Title))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			continue
		}

		if !a.lists.DeleteList(id) {
			return fmt.Errorf("list %s not found", arg)
		}
		fmt.Printf("Deleted list %s\n", id)
	}

	a.saveUndo()
	return nil
}

func runListClone(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.resolveListID(args[0])
	if err != nil {
		return err
	}

	cloned, ok := a.lists.CloneList(id)
	if !ok {
		return fmt.Errorf("could not clone list %s (missing or at capacity)", args[0])
	}

	a.saveUndo()
	fmt.Printf("Created list %s (%s)\n", cloned.ID, cloned.Title)
	return nil
}

func runListPin(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.resolveListID(args[0])
	if err != nil {
		return err
	}

	updated, ok := a.lists.TogglePinList(id)
	if !ok {
		return fmt.Errorf("list %s not found", args[0])
	}

	a.saveUndo()
	if updated.Pinned {
		fmt.Printf("Pinned list %s\n", id)
	} else {
		fmt.Printf("Unpinned list %s\n", id)
	}
	return nil
}

func runListShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.resolveListID(args[0])
	if err != nil {
		return err
	}
	target, _ := a.lists.Find(id)

	if listShowJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(target)
	}

	printListDetail(a, target, listShowAll)
	return nil
}

func runListLs(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	sorted := list.SortLists(a.lists.Lists(), a.settings.Current().ListSortMode)

	if listLsJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(sorted)
	}

	printListTable(a, sorted)
	return nil
}

// resolveListID resolves a unique list ID prefix to a full ID.
func (a *app) resolveListID(prefix string) (string, error) {
	index := list.NewListIndex(a.lists.Lists())
	return index.Resolve(prefix)
}
