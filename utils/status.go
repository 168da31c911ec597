// utils/status.go
package utils

import "time"

const (
	StatusActive   = "Active"
	StatusExpiring = "Expiring"
	StatusExpired  = "Expired"

	// A membership counts as expiring this close to its end date
	ExpiringWindowDays = 7
)

// ClassifyMembershipStatus derives a lifecycle status from a
// membership's end date: Expired once the end date is today or past,
// Expiring within the last seven days, Active otherwise. A member with
// no end date (no current membership) keeps their stored status.
func ClassifyMembershipStatus(endDate *time.Time, storedStatus string, today time.Time) string {
	if endDate == nil {
		return storedStatus
	}

	days := DaysBetween(today, *endDate)
	switch {
	case days <= 0:
		return StatusExpired
	case days <= ExpiringWindowDays:
		return StatusExpiring
	default:
		return StatusActive
	}
}

// PaymentStatusLabel maps a stored payment status code to its display
// label. Unrecognized codes pass through unchanged.
func PaymentStatusLabel(code string) string {
	switch code {
	case "completed":
		return "Completed"
	case "pending":
		return "Pending"
	case "failed":
		return "Failed"
	default:
		return code
	}
}
