package services

import (
	"testing"
	"time"

	"gymtrack-backend/models"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSumCompleted(t *testing.T) {
	payments := []models.Payment{
		{Amount: 79, Status: models.PaymentCompleted},
		{Amount: 49, Status: models.PaymentPending},
	}

	if got := SumCompleted(payments); got != 79 {
		t.Errorf("SumCompleted = %v, want 79", got)
	}
	if got := SumCompleted(nil); got != 0 {
		t.Errorf("SumCompleted(nil) = %v, want 0", got)
	}
	if got := SumCompleted([]models.Payment{}); got != 0 {
		t.Errorf("SumCompleted(empty) = %v, want 0", got)
	}
}

func TestSumPending(t *testing.T) {
	payments := []models.Payment{
		{Amount: 79, Status: models.PaymentCompleted},
		{Amount: 49, Status: models.PaymentPending},
		{Amount: 30, Status: models.PaymentPending},
		{Amount: 99, Status: models.PaymentFailed},
	}

	if got := SumPending(payments); got != 79 {
		t.Errorf("SumPending = %v, want 79", got)
	}
}

func TestRevenueInRange(t *testing.T) {
	june := date(2024, time.June, 1)
	july := date(2024, time.July, 1)

	payments := []models.Payment{
		{Amount: 100, Status: models.PaymentCompleted, PaymentDate: date(2024, time.June, 1)},
		{Amount: 50, Status: models.PaymentCompleted, PaymentDate: date(2024, time.June, 30)},
		{Amount: 25, Status: models.PaymentPending, PaymentDate: date(2024, time.June, 15)},
		{Amount: 75, Status: models.PaymentCompleted, PaymentDate: date(2024, time.May, 31)},
		{Amount: 80, Status: models.PaymentCompleted, PaymentDate: july}, // exclusive upper bound
	}

	if got := RevenueInRange(payments, june, july); got != 150 {
		t.Errorf("RevenueInRange = %v, want 150", got)
	}
	if got := RevenueInRange(nil, june, july); got != 0 {
		t.Errorf("RevenueInRange(nil) = %v, want 0", got)
	}
}

func TestMonthlyRevenue(t *testing.T) {
	now := date(2024, time.June, 15)
	payments := []models.Payment{
		{Amount: 100, Status: models.PaymentCompleted, PaymentDate: date(2024, time.June, 3)},
		{Amount: 60, Status: models.PaymentCompleted, PaymentDate: date(2024, time.May, 3)},
		{Amount: 40, Status: models.PaymentFailed, PaymentDate: date(2024, time.June, 10)},
	}

	if got := MonthlyRevenue(payments, now); got != 100 {
		t.Errorf("MonthlyRevenue = %v, want 100", got)
	}
}

func TestCountActiveForPlan(t *testing.T) {
	planA := uuid.New()
	planB := uuid.New()

	memberships := []models.MemberMembership{
		{PlanID: planA, Status: "active"},
		{PlanID: planB, Status: "active"},
		{PlanID: planA, Status: "expired"},
		{PlanID: planA, Status: "active"},
		{PlanID: planA, Status: "cancelled"},
	}

	if got := CountActiveForPlan(memberships, planA); got != 2 {
		t.Errorf("CountActiveForPlan = %d, want 2", got)
	}

	// Row order must not matter
	reversed := make([]models.MemberMembership, 0, len(memberships))
	for i := len(memberships) - 1; i >= 0; i-- {
		reversed = append(reversed, memberships[i])
	}
	if got := CountActiveForPlan(reversed, planA); got != 2 {
		t.Errorf("CountActiveForPlan(reversed) = %d, want 2", got)
	}

	if got := CountActiveForPlan(nil, planA); got != 0 {
		t.Errorf("CountActiveForPlan(nil) = %d, want 0", got)
	}
}

func TestCountExpiringWithin(t *testing.T) {
	today := date(2024, time.June, 15)

	memberships := []models.MemberMembership{
		{Status: "active", EndDate: date(2024, time.June, 15)},  // today, in window
		{Status: "active", EndDate: date(2024, time.July, 15)},  // day 30, in window
		{Status: "active", EndDate: date(2024, time.July, 16)},  // day 31, outside
		{Status: "active", EndDate: date(2024, time.June, 14)},  // already past
		{Status: "expired", EndDate: date(2024, time.June, 20)}, // wrong status
	}

	if got := CountExpiringWithin(memberships, today, 30); got != 2 {
		t.Errorf("CountExpiringWithin = %d, want 2", got)
	}
	if got := CountExpiringWithin([]models.MemberMembership{}, today, 30); got != 0 {
		t.Errorf("CountExpiringWithin(empty) = %d, want 0", got)
	}
}
