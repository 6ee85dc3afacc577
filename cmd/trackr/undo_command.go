package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent destructive change",
	Long: `Undo the most recent destructive change.

Deletes, pin toggles, and item additions can be undone. A single undo
step is kept; a second undo with nothing left to revert is a no-op.`,
	Args: cobra.NoArgs,
	RunE: runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	rec := a.lists.UndoState()
	if !a.lists.Undo() {
		fmt.Println("Nothing to undo.")
		return nil
	}

	a.saveUndo()
	fmt.Printf("Undid %s\n", rec.Kind)
	return nil
}
