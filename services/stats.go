// services/stats.go
package services

import (
	"time"

	"gymtrack-backend/models"
	"gymtrack-backend/utils"

	"github.com/google/uuid"
)

// SumCompleted totals the amounts of completed payments. An empty
// slice yields zero.
func SumCompleted(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		if p.Status == models.PaymentCompleted {
			total += p.Amount
		}
	}
	return total
}

// SumPending totals the amounts still awaiting completion
func SumPending(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		if p.Status == models.PaymentPending {
			total += p.Amount
		}
	}
	return total
}

// RevenueInRange totals completed payments whose payment date falls in
// [from, to). Completed-only is the canonical revenue rule everywhere
// in this service, dashboard included.
func RevenueInRange(payments []models.Payment, from, to time.Time) float64 {
	var total float64
	for _, p := range payments {
		if p.Status != models.PaymentCompleted {
			continue
		}
		if p.PaymentDate.Before(from) || !p.PaymentDate.Before(to) {
			continue
		}
		total += p.Amount
	}
	return total
}

// MonthlyRevenue totals completed payments in the calendar month
// containing now.
func MonthlyRevenue(payments []models.Payment, now time.Time) float64 {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return RevenueInRange(payments, firstOfMonth, firstOfMonth.AddDate(0, 1, 0))
}

// CountActiveForPlan counts memberships with status exactly active for
// the given plan. Row order does not matter.
func CountActiveForPlan(memberships []models.MemberMembership, planID uuid.UUID) int {
	count := 0
	for _, m := range memberships {
		if m.Status == "active" && m.PlanID == planID {
			count++
		}
	}
	return count
}

// CountExpiringWithin counts active memberships whose end date falls
// within [today, today+days].
func CountExpiringWithin(memberships []models.MemberMembership, today time.Time, days int) int {
	start := utils.BeginningOfDay(today)
	count := 0
	for _, m := range memberships {
		if m.Status != "active" {
			continue
		}
		until := utils.DaysBetween(start, m.EndDate)
		if until >= 0 && until <= days {
			count++
		}
	}
	return count
}
