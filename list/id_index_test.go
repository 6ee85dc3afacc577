package list

import (
	"errors"
	"testing"
)

func TestIDIndexResolve(t *testing.T) {
	index := NewIDIndex([]string{"abc123", "abd456", "xyz789"})

	cases := []struct {
		name    string
		prefix  string
		want    string
		wantErr error
	}{
		{name: "unique prefix", prefix: "x", want: "xyz789"},
		{name: "longer unique prefix", prefix: "abc", want: "abc123"},
		{name: "exact match", prefix: "abd456", want: "abd456"},
		{name: "case-insensitive", prefix: "ABC", want: "abc123"},
		{name: "ambiguous", prefix: "ab", wantErr: ErrAmbiguousIDPrefix},
		{name: "unknown", prefix: "zzz", wantErr: ErrIDNotFound},
		{name: "empty", prefix: "", wantErr: ErrIDNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := index.Resolve(tc.prefix)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestIDIndexPrefixLengths(t *testing.T) {
	index := NewIDIndex([]string{"abc123", "abd456", "xyz789"})

	lengths := index.PrefixLengths()
	if lengths["abc123"] != 3 {
		t.Fatalf("expected prefix length 3 for abc123, got %d", lengths["abc123"])
	}
	if lengths["xyz789"] != 1 {
		t.Fatalf("expected prefix length 1 for xyz789, got %d", lengths["xyz789"])
	}
}

func TestNewItemIndex(t *testing.T) {
	l := List{Items: []Item{{ID: "item-1"}, {ID: "item-2"}}}
	index := NewItemIndex(l)

	got, err := index.Resolve("item-2")
	if err != nil || got != "item-2" {
		t.Fatalf("expected item-2, got %q err=%v", got, err)
	}
}
