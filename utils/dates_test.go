package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeEndDate(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "plain one month",
			start:  date(2024, time.March, 15),
			months: 1,
			want:   date(2024, time.April, 15),
		},
		{
			name:   "month-end overflow into leap February",
			start:  date(2024, time.January, 31),
			months: 1,
			want:   date(2024, time.February, 29),
		},
		{
			name:   "month-end overflow into regular February",
			start:  date(2023, time.January, 31),
			months: 1,
			want:   date(2023, time.February, 28),
		},
		{
			name:   "31st into a 30-day month",
			start:  date(2024, time.March, 31),
			months: 1,
			want:   date(2024, time.April, 30),
		},
		{
			name:   "twelve months crosses the year",
			start:  date(2024, time.June, 10),
			months: 12,
			want:   date(2025, time.June, 10),
		},
		{
			name:   "multi-month add from december",
			start:  date(2024, time.December, 31),
			months: 2,
			want:   date(2025, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeEndDate(tt.start, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("ComputeEndDate(%v, %d) = %v, want %v", tt.start, tt.months, got, tt.want)
			}

			// Deterministic: same inputs, same output
			if again := ComputeEndDate(tt.start, tt.months); !again.Equal(got) {
				t.Errorf("ComputeEndDate not deterministic: %v then %v", got, again)
			}

			// End date never precedes the start
			if got.Before(tt.start) {
				t.Errorf("ComputeEndDate(%v, %d) = %v is before start", tt.start, tt.months, got)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2024, time.May, 1), date(2024, time.May, 1), 0},
		{"one week", date(2024, time.May, 1), date(2024, time.May, 8), 7},
		{"negative when end precedes start", date(2024, time.May, 8), date(2024, time.May, 1), -7},
		{"ignores time of day", time.Date(2024, time.May, 1, 23, 59, 0, 0, time.UTC), time.Date(2024, time.May, 2, 0, 1, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
