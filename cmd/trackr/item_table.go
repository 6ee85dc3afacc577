package main

import (
	"fmt"
	"strings"
	"time"

	"trackr/internal/ui"
	"trackr/list"
)

// printItemTable prints items in a table format.
func printItemTable(a *app, items []list.Item) {
	if len(items) == 0 {
		fmt.Println("No items found.")
		return
	}

	fmt.Print(formatItemTable(items, a.styles(), time.Now()))
}

func formatItemTable(items []list.Item, styles ui.Styles, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "DONE", "PRI", "CATEGORY", "DUE", "TITLE"}, len(items))

	prefixLengths := list.NewIDIndex(itemIDs(items)).PrefixLengths()
	for _, item := range items {
		done := ""
		if item.Completed {
			done = "x"
		}

		category := item.Category
		if category == "" {
			category = "-"
		}

		prefixLen := prefixLengths[strings.ToLower(item.ID)]
		title := ui.TruncateTableCell(item.Title)
		if item.Completed && ui.ANSIEnabled() {
			title = styles.Completed.Render(title)
		}

		row := []string{
			styles.HighlightID(item.ID, prefixLen),
			done,
			prioritySymbol(item.Priority),
			category,
			formatItemDue(item, styles, now),
			title,
		}
		builder.AddRow(row)
	}

	return builder.String()
}

func itemIDs(items []list.Item) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func prioritySymbol(priority list.Priority) string {
	switch priority {
	case list.PriorityHigh:
		return "high"
	case list.PriorityLow:
		return "low"
	case list.PriorityMedium:
		return "med"
	default:
		return "-"
	}
}

func formatItemDue(item list.Item, styles ui.Styles, now time.Time) string {
	due := ui.FormatDue(item.DueDate, now)
	if strings.HasPrefix(due, "overdue") && !item.Completed && ui.ANSIEnabled() {
		return styles.Overdue.Render(due)
	}
	return due
}
