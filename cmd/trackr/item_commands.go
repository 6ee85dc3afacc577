package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"trackr/internal/dates"
	"trackr/internal/editor"
	"trackr/internal/listflags"
	"trackr/list"
)

var itemCmd = &cobra.Command{
	Use:     "item",
	Short:   "Manage items within a list",
	Aliases: []string{"items"},
}

// item add
var itemAddCmd = &cobra.Command{
	Use:   "add <list-id> [title]",
	Short: "Add an item to a list",
	Long: `Add an item to a list.

By default, opens $EDITOR to edit a TOML representation of the item
when running interactively and no title is provided. Use --no-edit to
skip the editor, or --edit to force opening the editor.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runItemAdd,
}

var (
	itemAddDescription string
	itemAddNotes       string
	itemAddCategory    string
	itemAddPriority    string
	itemAddDue         string
	itemAddEdit        bool
	itemAddNoEdit      bool
)

// item update
var itemUpdateCmd = &cobra.Command{
	Use:     "update <list-id> <item-id>",
	Short:   "Update an item",
	Aliases: []string{"edit"},
	Long: `Update an item.

By default, opens $EDITOR to edit a TOML representation of the item
when running interactively and no update flags are provided. Use
--no-edit to skip the editor, or --edit to force opening the editor.`,
	Args: cobra.ExactArgs(2),
	RunE: runItemUpdate,
}

var (
	itemUpdateTitle       string
	itemUpdateDescription string
	itemUpdateNotes       string
	itemUpdateCategory    string
	itemUpdatePriority    string
	itemUpdateDue         string
	itemUpdateEdit        bool
	itemUpdateNoEdit      bool
)

// item toggle
var itemToggleCmd = &cobra.Command{
	Use:     "toggle <list-id> <item-id>...",
	Short:   "Toggle completion of one or more items",
	Aliases: []string{"done"},
	Args:    cobra.MinimumNArgs(2),
	RunE:    runItemToggle,
}

// item delete
var itemDeleteCmd = &cobra.Command{
	Use:     "delete <list-id> <item-id>...",
	Short:   "Delete one or more items",
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(2),
	RunE:    runItemDelete,
}

var itemDeleteYes bool

// item move
var itemMoveCmd = &cobra.Command{
	Use:   "move <list-id> <item-id> <position>",
	Short: "Move an item to a new position",
	Args:  cobra.ExactArgs(3),
	RunE:  runItemMove,
}

// item ls
var itemLsCmd = &cobra.Command{
	Use:   "ls <list-id>",
	Short: "List items in a list",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemLs,
}

var (
	itemLsJSON bool
	itemLsAll  bool
)

// item show
var itemShowCmd = &cobra.Command{
	Use:   "show <list-id> <item-id>",
	Short: "Show detailed information about an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemShow,
}

var itemShowJSON bool

func init() {
	rootCmd.AddCommand(itemCmd)
	itemCmd.AddCommand(itemAddCmd, itemUpdateCmd, itemToggleCmd, itemDeleteCmd, itemMoveCmd, itemLsCmd, itemShowCmd)

	itemAddCmd.Flags().StringVarP(&itemAddDescription, "description", "d", "", "Item description")
	itemAddCmd.Flags().StringVar(&itemAddNotes, "notes", "", "Markdown notes")
	itemAddCmd.Flags().StringVar(&itemAddCategory, "category", "", "Category label")
	itemAddCmd.Flags().StringVarP(&itemAddPriority, "priority", "p", "", "Priority (low, medium, high)")
	itemAddCmd.Flags().StringVar(&itemAddDue, "due", "", "Due date (YYYY-MM-DD)")
	itemAddCmd.Flags().BoolVarP(&itemAddEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no title)")
	itemAddCmd.Flags().BoolVar(&itemAddNoEdit, "no-edit", false, "Do not open $EDITOR")

	itemUpdateCmd.Flags().StringVar(&itemUpdateTitle, "title", "", "New title")
	itemUpdateCmd.Flags().StringVarP(&itemUpdateDescription, "description", "d", "", "New description")
	itemUpdateCmd.Flags().StringVar(&itemUpdateNotes, "notes", "", "New markdown notes")
	itemUpdateCmd.Flags().StringVar(&itemUpdateCategory, "category", "", "New category label")
	itemUpdateCmd.Flags().StringVarP(&itemUpdatePriority, "priority", "p", "", "New priority (low, medium, high)")
	itemUpdateCmd.Flags().StringVar(&itemUpdateDue, "due", "", "New due date (YYYY-MM-DD, empty clears)")
	itemUpdateCmd.Flags().BoolVarP(&itemUpdateEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no update flags)")
	itemUpdateCmd.Flags().BoolVar(&itemUpdateNoEdit, "no-edit", false, "Do not open $EDITOR")

	itemDeleteCmd.Flags().BoolVarP(&itemDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	itemLsCmd.Flags().BoolVar(&itemLsJSON, "json", false, "Output as JSON")
	listflags.AddAllFlag(itemLsCmd, &itemLsAll)

	itemShowCmd.Flags().BoolVar(&itemShowJSON, "json", false, "Output as JSON")
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	listID, err := a.resolveListID(args[0])
	if err != nil {
		return err
	}

	useEditor := itemAddEdit || (editor.IsInteractive() && len(args) < 2 && !itemAddNoEdit)

	var title, description string
	var opts list.ItemOptions
	if useEditor {
		data := editor.DefaultCreateData()
		if len(args) > 1 {
			data.Title = strings.TrimSpace(args[1])
		}
		parsed, err := editor.EditItemWithData(data)
		if err != nil {
			return err
		}
		title = strings.TrimSpace(parsed.Title)
		description = parsed.Description
		opts = parsed.ToItemOptions()
	} else {
		if len(args) < 2 {
			return fmt.Errorf("a title is required without --edit")
		}
		title = strings.TrimSpace(args[1])
		if err := list.ValidateTitle(title); err != nil {
			return err
		}
		description = itemAddDescription
		opts = list.ItemOptions{
			Notes:    itemAddNotes,
			Category: itemAddCategory,
		}
		if itemAddPriority != "" {
			priority, err := list.ParsePriority(itemAddPriority)
			if err != nil {
				return err
			}
			opts.Priority = priority
		}
		if cmd.Flags().Changed("due") {
			due, err := dates.ParseDue(itemAddDue)
			if err != nil {
				return err
			}
			opts.DueDate = due
		}
	}

	created, ok := a.lists.AddItem(listID, title, description, opts)
	if !ok {
		return fmt.Errorf("list %s not found", args[0])
	}

	a.saveUndo()
	fmt.Printf("Added item %s\n", created.ID)
	return nil
}

func runItemUpdate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	listID, itemID, current, err := a.resolveItem(args[0], args[1])
	if err != nil {
		return err
	}

	hasFlags := cmd.Flags().Changed("title") || cmd.Flags().Changed("description") ||
		cmd.Flags().Changed("notes") || cmd.Flags().Changed("category") ||
		cmd.Flags().Changed("priority") || cmd.Flags().Changed("due")
	useEditor := itemUpdateEdit || (editor.IsInteractive() && !hasFlags && !itemUpdateNoEdit)

	var upd list.ItemUpdate
	toggleCompleted := false
	if useEditor {
		parsed, err := editor.EditItem(&current)
		if err != nil {
			return err
		}
		upd = parsed.ToItemUpdate()
		if parsed.Completed != nil && *parsed.Completed != current.Completed {
			toggleCompleted = true
		}
	} else {
		if cmd.Flags().Changed("title") {
			title := strings.TrimSpace(itemUpdateTitle)
			if err := list.ValidateTitle(title); err != nil {
				return err
			}
			upd.Title = &title
		}
		if cmd.Flags().Changed("description") {
			upd.Description = &itemUpdateDescription
		}
		if cmd.Flags().Changed("notes") {
			upd.Notes = &itemUpdateNotes
		}
		if cmd.Flags().Changed("category") {
			upd.Category = &itemUpdateCategory
		}
		if cmd.Flags().Changed("priority") {
			priority, err := list.ParsePriority(itemUpdatePriority)
			if err != nil {
				return err
			}
			upd.Priority = &priority
		}
		if cmd.Flags().Changed("due") {
			due, err := dates.ParseDue(itemUpdateDue)
			if err != nil {
				return err
			}
			upd.DueDate = &due
		}
	}

	if _, ok := a.lists.UpdateItem(listID, itemID, upd); !ok {
		return fmt.Errorf("item %s not found", args[1])
	}
	if toggleCompleted {
		a.lists.ToggleItem(listID, itemID)
	}

	a.saveUndo()
	fmt.Printf("Updated item %s\n", itemID)
	return nil
}

func runItemToggle(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	listID, err := a.resolveListID(args[0])
	if err != nil {
		return err
	}

	for _, arg := range args[1:] {
		itemID, err := a.resolveItemID(listID, arg)
		if err != nil {
			return err
		}

		updated, ok := a.lists.ToggleItem(listID, itemID)
		if !ok {
			return fmt.Errorf("item %s not found", arg)
		}
		if updated.Completed {
			fmt.Printf("Completed item %s\n", itemID)
		} else {
			fmt.Printf("Reopened item %s\n", itemID)
		}
	}

	a.saveUndo()
	return nil
}

func runItemDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	listID, err := a.resolveListID(args[0])
	if err != nil {
		return err
	}

	for _, arg := range args[1:] {
		itemID, err := a.resolveItemID(listID, arg)
		if err != nil {
			return err
		}

		ok, err := a.confirmDelete(itemDeleteYes, fmt.Sprintf("Delete item %s?", itemID))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			continue
		}

		if !a.lists.DeleteItem(listID, itemID) {
			return fmt.Errorf("item %s not found", arg)
		}
		fmt.Printf("Deleted item %s\n", itemID)
	}

	a.saveUndo()
	return nil
}

func runItemMove(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	listID, itemID, _, err := a.resolveItem(args[0], args[1])
	if err != nil {
		return err
	}

	position, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid position %q", args[2])
	}

	target, _ := a.lists.Find(listID)
	moved, ok := list.MoveItem(target.Items, itemID, position)
	if !ok {
		return fmt.Errorf("item %s not found", args[1])
	}
	if !a.lists.ReorderItems(listID, moved) {
		return fmt.Errorf("list %s not found", args[0])
	}

	a.saveUndo()
	fmt.Printf("Moved item %s to position %d\n", itemID, position)
	return nil
}

func runItemLs(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	listID, err := a.resolveListID(args[0])
	if err != nil {
		return err
	}
	target, _ := a.lists.Find(listID)

	items := list.SortItems(target.Items, a.settings.Current().ItemSortMode)
	if !itemLsAll {
		items = filterIncomplete(items)
	}

	if itemLsJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(items)
	}

	printItemTable(a, items)
	return nil
}

func runItemShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	_, _, item, err := a.resolveItem(args[0], args[1])
	if err != nil {
		return err
	}

	if itemShowJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(item)
	}

	printItemDetail(a, item)
	return nil
}

// resolveItemID resolves a unique item ID prefix within a list.
func (a *app) resolveItemID(listID, prefix string) (string, error) {
	target, ok := a.lists.Find(listID)
	if !ok {
		return "", list.ErrIDNotFound
	}
	index := list.NewItemIndex(target)
	return index.Resolve(prefix)
}

// resolveItem resolves list and item ID prefixes and returns the item.
func (a *app) resolveItem(listPrefix, itemPrefix string) (listID, itemID string, item list.Item, err error) {
	listID, err = a.resolveListID(listPrefix)
	if err != nil {
		return "", "", list.Item{}, err
	}
	itemID, err = a.resolveItemID(listID, itemPrefix)
	if err != nil {
		return "", "", list.Item{}, err
	}

	target, _ := a.lists.Find(listID)
	for _, candidate := range target.Items {
		if candidate.ID == itemID {
			return listID, itemID, candidate, nil
		}
	}
	return "", "", list.Item{}, list.ErrIDNotFound
}

func filterIncomplete(items []list.Item) []list.Item {
	kept := make([]list.Item, 0, len(items))
	for _, item := range items {
		if !item.Completed {
			kept = append(kept, item)
		}
	}
	return kept
}
