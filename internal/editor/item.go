package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"

	"trackr/internal/dates"
	"trackr/list"
)

// ItemData represents the data used to render the TOML template.
type ItemData struct {
	// IsUpdate is true when editing an existing item.
	IsUpdate bool
	// ID is the item ID (only for updates).
	ID string
	// Title is the item title.
	Title string
	// Description is the short item description.
	Description string
	// Category is a free-form grouping label.
	Category string
	// Priority is the item priority (low, medium, high).
	Priority string
	// Due is the due date rendered as YYYY-MM-DD, empty when unset.
	Due string
	// Completed is the completion state (only for updates).
	Completed bool
	// Notes is the markdown notes body.
	Notes string
}

// DefaultCreateData returns ItemData with default values for a new item.
func DefaultCreateData() ItemData {
	return ItemData{
		IsUpdate: false,
		Priority: string(list.PriorityMedium),
	}
}

// DataFromItem creates ItemData from an existing item for editing.
func DataFromItem(item *list.Item) ItemData {
	priority := item.Priority
	if priority == "" {
		priority = list.PriorityMedium
	}
	return ItemData{
		IsUpdate:    true,
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Priority:    string(priority),
		Due:         dates.FormatDue(item.DueDate),
		Completed:   item.Completed,
		Notes:       item.Notes,
	}
}

var itemTemplate = template.Must(template.New("item").Parse(`title = {{ printf "%q" .Title }}
 description = {{ printf "%q" .Description }}
 category = {{ printf "%q" .Category }}
 priority = {{ printf "%q" .Priority }} # low, medium, high
 due = {{ printf "%q" .Due }} # YYYY-MM-DD, empty for none
{{- if .IsUpdate }}
 completed = {{ .Completed }}
{{- end }}
---
{{ .Notes }}
`))

// RenderItemTOML renders the item data as a TOML string for editing.
func RenderItemTOML(data ItemData) (string, error) {
	var buf bytes.Buffer
	if err := itemTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedItem represents the parsed result from the TOML editor output.
type ParsedItem struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Category    string `toml:"category"`
	Priority    string `toml:"priority"`
	Due         string `toml:"due"`
	Completed   *bool  `toml:"completed"`
	Notes       string
	DueMillis   int64
}

// ParseItemTOML parses the TOML content from the editor.
func ParseItemTOML(content string) (*ParsedItem, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedItem
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Notes = strings.TrimLeft(body, "\n")
	parsed.Priority = strings.ToLower(strings.TrimSpace(parsed.Priority))

	if err := list.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if parsed.Priority != "" {
		if _, err := list.ParsePriority(parsed.Priority); err != nil {
			return nil, err
		}
	}
	dueMillis, err := dates.ParseDue(parsed.Due)
	if err != nil {
		return nil, err
	}
	parsed.DueMillis = dueMillis

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

func createItemTempFile() (*os.File, error) {
	return os.CreateTemp("", "trackr-item-*.md")
}

// EditItem opens the editor for an item and returns the parsed result.
// For create: pass nil for existing.
// For update: pass the existing item.
func EditItem(existing *list.Item) (*ParsedItem, error) {
	var data ItemData
	if existing == nil {
		data = DefaultCreateData()
	} else {
		data = DataFromItem(existing)
	}
	return EditItemWithData(data)
}

// EditItemWithData opens the editor with pre-populated data and returns the parsed result.
func EditItemWithData(data ItemData) (*ParsedItem, error) {
	content, err := RenderItemTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createItemTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseItemTOML(string(edited))
}

// ToItemOptions converts a ParsedItem to list.ItemOptions for creation.
func (p *ParsedItem) ToItemOptions() list.ItemOptions {
	return list.ItemOptions{
		Notes:    p.Notes,
		Category: p.Category,
		Priority: list.Priority(p.Priority),
		DueDate:  p.DueMillis,
	}
}

// ToItemUpdate converts a ParsedItem to a list.ItemUpdate.
func (p *ParsedItem) ToItemUpdate() list.ItemUpdate {
	priority := list.Priority(p.Priority)
	update := list.ItemUpdate{
		Title:       &p.Title,
		Description: &p.Description,
		Notes:       &p.Notes,
		Category:    &p.Category,
		Priority:    &priority,
		DueDate:     &p.DueMillis,
	}
	return update
}
