package utils

import (
	"testing"
	"time"
)

func TestClassifyMembershipStatus(t *testing.T) {
	today := date(2024, time.June, 15)

	endOn := func(y int, m time.Month, d int) *time.Time {
		e := date(y, m, d)
		return &e
	}

	tests := []struct {
		name    string
		endDate *time.Time
		stored  string
		want    string
	}{
		{"end date well in the future", endOn(2024, time.December, 1), "active", StatusActive},
		{"eight days out is still active", endOn(2024, time.June, 23), "active", StatusActive},
		{"seven days out is expiring", endOn(2024, time.June, 22), "active", StatusExpiring},
		{"tomorrow is expiring", endOn(2024, time.June, 16), "active", StatusExpiring},
		{"ends today is expired", endOn(2024, time.June, 15), "active", StatusExpired},
		{"already past is expired", endOn(2024, time.January, 1), "active", StatusExpired},
		{"no end date falls back to stored status", nil, "inactive", "inactive"},
		{"no end date keeps stored active", nil, "active", "active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyMembershipStatus(tt.endDate, tt.stored, today)
			if got != tt.want {
				t.Errorf("ClassifyMembershipStatus(%v, %q, %v) = %q, want %q",
					tt.endDate, tt.stored, today, got, tt.want)
			}
		})
	}
}

func TestClassifyMembershipStatusBoundaries(t *testing.T) {
	// Expired iff end <= today; Expiring iff 0 < days <= 7
	today := date(2024, time.June, 15)
	for offset := -2; offset <= 10; offset++ {
		end := today.AddDate(0, 0, offset)
		got := ClassifyMembershipStatus(&end, "active", today)

		var want string
		switch {
		case offset <= 0:
			want = StatusExpired
		case offset <= 7:
			want = StatusExpiring
		default:
			want = StatusActive
		}
		if got != want {
			t.Errorf("offset %d: got %q, want %q", offset, got, want)
		}
	}
}

func TestPaymentStatusLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"completed", "Completed"},
		{"pending", "Pending"},
		{"failed", "Failed"},
		{"refunded", "refunded"}, // unknown codes pass through
		{"", ""},
	}

	for _, tt := range tests {
		if got := PaymentStatusLabel(tt.code); got != tt.want {
			t.Errorf("PaymentStatusLabel(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
