package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateUnknown is the sentinel used when no publication date can be recovered
// from source text.
const DateUnknown = "Recent"

// DisplayDateLayout is the human-facing date format used across all result
// payloads, e.g. "Mar 05, 2024".
const DisplayDateLayout = "Jan 02, 2006"

var relativeDatePattern = regexp.MustCompile(`(?i)\b(\d+|a|an)\s+(minute|hour|day|week|month|year)s?\s+ago\b`)

// RelativeDate resolves phrases like "3 days ago" or "an hour ago" against
// now, formatted with DisplayDateLayout. Returns "" when the text carries no
// relative date.
func RelativeDate(text string, now time.Time) string {
	m := relativeDatePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	n := 1
	if !strings.EqualFold(m[1], "a") && !strings.EqualFold(m[1], "an") {
		parsed, err := strconv.Atoi(m[1])
		if err != nil {
			return ""
		}
		n = parsed
	}

	var d time.Duration
	switch strings.ToLower(m[2]) {
	case "minute":
		d = time.Duration(n) * time.Minute
	case "hour":
		d = time.Duration(n) * time.Hour
	case "day":
		d = time.Duration(n) * 24 * time.Hour
	case "week":
		d = time.Duration(n) * 7 * 24 * time.Hour
	case "month":
		d = time.Duration(n) * 30 * 24 * time.Hour
	case "year":
		d = time.Duration(n) * 365 * 24 * time.Hour
	default:
		return ""
	}
	return now.Add(-d).Format(DisplayDateLayout)
}

var bareYearPattern = regexp.MustCompile(`^\d{4}$`)

// SortTime parses a display date back to a time value for ordering. It
// accepts the display layout, a bare year, and ISO-ish forms. Unparseable
// values (including DateUnknown) return the zero time so they sort oldest.
func SortTime(date string) time.Time {
	date = strings.TrimSpace(date)
	if date == "" || date == DateUnknown {
		return time.Time{}
	}
	if t, err := time.Parse(DisplayDateLayout, date); err == nil {
		return t
	}
	if bareYearPattern.MatchString(date) {
		year, _ := strconv.Atoi(date)
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	for _, layout := range []string{"2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t
		}
	}
	return time.Time{}
}
