package ui

import (
	"strings"
	"testing"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	got := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"a1", "Groceries"},
			{"b22", "Errands"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "a1   Groceries") {
		t.Fatalf("unexpected row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "b22  Errands") {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}

func TestFormatTableIgnoresANSIWidth(t *testing.T) {
	styled := "\x1b[1m\x1b[36ma\x1b[0m1"
	got := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{styled, "Groceries"},
			{"b2", "Errands"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	plain := StripANSICodes(lines[1])
	if !strings.HasPrefix(plain, "a1  Groceries") {
		t.Fatalf("expected escape codes excluded from width, got %q", plain)
	}
}

func TestFormatTableNormalizesNewlines(t *testing.T) {
	got := FormatTable(
		[]string{"TITLE"},
		[][]string{{"line one\nline two"}},
	)

	if strings.Count(got, "\n") != 2 {
		t.Fatalf("expected embedded newlines collapsed, got %q", got)
	}
}

func TestTruncateTableCell(t *testing.T) {
	long := strings.Repeat("x", 80)
	got := TruncateTableCell(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis, got %q", got)
	}
	if displayWidth(got) != tableCellMaxWidth {
		t.Fatalf("expected width %d, got %d", tableCellMaxWidth, displayWidth(got))
	}

	short := "Groceries"
	if TruncateTableCell(short) != short {
		t.Fatal("expected short values untouched")
	}
}

func TestStripANSICodes(t *testing.T) {
	input := "\x1b[1m\x1b[36mabc\x1b[0mdef"
	if got := StripANSICodes(input); got != "abcdef" {
		t.Fatalf("expected abcdef, got %q", got)
	}
}
