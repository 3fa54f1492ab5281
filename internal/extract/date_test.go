package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeDate(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "days ago", text: "published 3 days ago by staff", want: "Mar 12, 2024"},
		{name: "single article a", text: "posted a week ago", want: "Mar 08, 2024"},
		{name: "single article an", text: "an hour ago", want: "Mar 15, 2024"},
		{name: "months approximate", text: "2 months ago", want: "Jan 15, 2024"},
		{name: "years", text: "1 year ago", want: "Mar 15, 2023"},
		{name: "requires ago suffix", text: "in 3 days", want: ""},
		{name: "no date", text: "breaking news today", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDate(tt.text, now))
		})
	}
}

func TestSortTime(t *testing.T) {
	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{name: "display layout", date: "Mar 12, 2024", want: time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)},
		{name: "bare year", date: "2023", want: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{name: "iso dash", date: "2024-01-05", want: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{name: "iso slash", date: "2024/01/05", want: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{name: "unknown sentinel sorts oldest", date: DateUnknown, want: time.Time{}},
		{name: "garbage sorts oldest", date: "sometime soon", want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortTime(tt.date))
		})
	}
}
