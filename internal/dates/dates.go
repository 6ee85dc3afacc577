// Package dates parses and formats item due dates. Due dates are stored
// as millisecond unix timestamps; a zero value means no due date.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// ParseDue parses a due date from editor or flag input. Accepts
// YYYY-MM-DD (interpreted as local midnight) or RFC 3339. An empty
// string clears the due date.
func ParseDue(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	if parsed, err := time.ParseInLocation(dayLayout, value, time.Local); err == nil {
		return parsed.UnixMilli(), nil
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.UnixMilli(), nil
	}

	return 0, fmt.Errorf("invalid due date %q: use YYYY-MM-DD or RFC 3339", value)
}

// FormatDue renders a due timestamp as YYYY-MM-DD, or "" when unset.
func FormatDue(millis int64) string {
	if millis == 0 {
		return ""
	}
	return time.UnixMilli(millis).Local().Format(dayLayout)
}
