package main

import (
	"fmt"
	"os"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"trackr/internal/dates"
	"trackr/internal/markdown"
	"trackr/internal/ui"
	"trackr/list"
)

const detailFallbackWidth = 80

// printListDetail prints a list header followed by its item table.
func printListDetail(a *app, target list.List, includeCompleted bool) {
	styles := a.styles()

	title := target.Title
	if ui.ANSIEnabled() {
		title = styles.Title.Render(title)
	}
	fmt.Printf("%s\n", title)
	fmt.Printf("ID:      %s\n", target.ID)
	if target.Pinned {
		fmt.Println("Pinned:  yes")
	}
	if target.Icon != nil {
		fmt.Printf("Icon:    %s (%s)\n", target.Icon.Name, target.Icon.Color)
	}
	fmt.Printf("Created: %s\n", time.UnixMilli(target.CreatedAt).Local().Format("2006-01-02 15:04:05"))

	if target.Description != "" {
		fmt.Printf("\n%s\n", wordwrap.String(target.Description, detailWidth()))
	}

	items := list.SortItems(target.Items, a.settings.Current().ItemSortMode)
	if !includeCompleted {
		items = filterIncomplete(items)
	}

	fmt.Println()
	printItemTable(a, items)
}

// printItemDetail prints detailed information about an item.
func printItemDetail(a *app, item list.Item) {
	fmt.Printf("ID:        %s\n", item.ID)
	fmt.Printf("Title:     %s\n", item.Title)
	fmt.Printf("Completed: %v\n", item.Completed)
	if item.Priority != "" {
		fmt.Printf("Priority:  %s\n", item.Priority)
	}
	if item.Category != "" {
		fmt.Printf("Category:  %s\n", item.Category)
	}
	if item.DueDate != 0 {
		fmt.Printf("Due:       %s\n", dates.FormatDue(item.DueDate))
	}
	fmt.Printf("Created:   %s\n", time.UnixMilli(item.CreatedAt).Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Position:  %d\n", item.Order)

	if item.Description != "" {
		fmt.Printf("\n%s\n", wordwrap.String(item.Description, detailWidth()))
	}

	if item.Notes != "" {
		rendered := markdown.Render(detailWidth(), 2, []byte(item.Notes))
		if rendered != nil {
			fmt.Printf("\nNotes:\n%s\n", rendered)
		}
	}
}

func detailWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 20 {
		return detailFallbackWidth
	}
	return width
}
