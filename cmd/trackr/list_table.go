package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"trackr/internal/ui"
	"trackr/list"
)

// printListTable prints lists in a table format.
func printListTable(a *app, lists []list.List) {
	if len(lists) == 0 {
		fmt.Println("No lists found.")
		return
	}

	fmt.Print(formatListTable(lists, a.styles(), time.Now()))
}

func formatListTable(lists []list.List, styles ui.Styles, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PIN", "ITEMS", "DONE", "AGE", "TITLE"}, len(lists))

	prefixLengths := list.NewListIndex(lists).PrefixLengths()
	for _, l := range lists {
		pin := ""
		if l.Pinned {
			pin = "*"
		}

		done := 0
		for _, item := range l.Items {
			if item.Completed {
				done++
			}
		}

		prefixLen := prefixLengths[strings.ToLower(l.ID)]
		row := []string{
			styles.HighlightID(l.ID, prefixLen),
			pin,
			strconv.Itoa(len(l.Items)),
			strconv.Itoa(done),
			ui.FormatTimeAgo(time.UnixMilli(l.CreatedAt), now),
			ui.TruncateTableCell(l.Title),
		}
		builder.AddRow(row)
	}

	return builder.String()
}
