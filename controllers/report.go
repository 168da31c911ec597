// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"gymtrack-backend/config"
	"gymtrack-backend/models"
	"gymtrack-backend/services"
	"gymtrack-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the revenue analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue   float64         `json:"currentMonthRevenue"`
	MonthGrowth           float64         `json:"monthGrowth"`
	CurrentQuarterRevenue float64         `json:"currentQuarterRevenue"`
	QuarterGrowth         float64         `json:"quarterGrowth"`
	CurrentYearRevenue    float64         `json:"currentYearRevenue"`
	YearGrowth            float64         `json:"yearGrowth"`
	PlanBreakdown         []PlanBreakdown `json:"planBreakdown"`
	QuickStats            QuickStatistics `json:"quickStats"`
}

type PlanBreakdown struct {
	Name           string  `json:"name"`
	MemberCount    int     `json:"memberCount"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
}

type QuickStatistics struct {
	TotalMembers    int64   `json:"totalMembers"`
	TotalPayments   int64   `json:"totalPayments"`
	AvgPaymentValue float64 `json:"avgPaymentValue"`
}

// GetReportAnalytics returns revenue totals with period-over-period
// growth and the per-plan breakdown
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	now := time.Now()
	currentYear, currentMonth, _ := now.Date()
	currentLocation := now.Location()

	firstOfMonth := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, currentLocation)
	firstOfQuarter := rc.getQuarterStart(now)
	firstOfYear := time.Date(currentYear, 1, 1, 0, 0, 0, 0, currentLocation)

	// One fetch feeds every range; the reducers do the slicing
	var payments []models.Payment
	if err := config.DB.Where("payment_date >= ?", firstOfYear.AddDate(-1, 0, 0)).
		Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	currentMonthRevenue := services.RevenueInRange(payments, firstOfMonth, firstOfMonth.AddDate(0, 1, 0))
	lastMonthRevenue := services.RevenueInRange(payments, firstOfMonth.AddDate(0, -1, 0), firstOfMonth)

	currentQuarterRevenue := services.RevenueInRange(payments, firstOfQuarter, firstOfQuarter.AddDate(0, 3, 0))
	lastQuarterRevenue := services.RevenueInRange(payments, firstOfQuarter.AddDate(0, -3, 0), firstOfQuarter)

	currentYearRevenue := services.RevenueInRange(payments, firstOfYear, firstOfYear.AddDate(1, 0, 0))
	lastYearRevenue := services.RevenueInRange(payments, firstOfYear.AddDate(-1, 0, 0), firstOfYear)

	// Per-plan breakdown from active memberships
	var plans []models.MembershipPlan
	if err := config.DB.Find(&plans).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve plans")
		return
	}
	var memberships []models.MemberMembership
	if err := config.DB.Where("status = ?", "active").Find(&memberships).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve memberships")
		return
	}

	breakdown := []PlanBreakdown{}
	for _, plan := range plans {
		count := services.CountActiveForPlan(memberships, plan.ID)
		breakdown = append(breakdown, PlanBreakdown{
			Name:           plan.Name,
			MemberCount:    count,
			MonthlyRevenue: plan.Price * float64(count),
		})
	}

	var totalMembers, totalPayments int64
	config.DB.Model(&models.Member{}).Count(&totalMembers)
	config.DB.Model(&models.Payment{}).Count(&totalPayments)

	var avgPayment float64
	if totalPayments > 0 {
		config.DB.Model(&models.Payment{}).
			Select("COALESCE(AVG(amount), 0)").Scan(&avgPayment)
	}

	c.JSON(http.StatusOK, AnalyticsSummary{
		CurrentMonthRevenue:   currentMonthRevenue,
		MonthGrowth:           rc.calculateGrowthPercentage(currentMonthRevenue, lastMonthRevenue),
		CurrentQuarterRevenue: currentQuarterRevenue,
		QuarterGrowth:         rc.calculateGrowthPercentage(currentQuarterRevenue, lastQuarterRevenue),
		CurrentYearRevenue:    currentYearRevenue,
		YearGrowth:            rc.calculateGrowthPercentage(currentYearRevenue, lastYearRevenue),
		PlanBreakdown:         breakdown,
		QuickStats: QuickStatistics{
			TotalMembers:    totalMembers,
			TotalPayments:   totalPayments,
			AvgPaymentValue: avgPayment,
		},
	})
}

func (rc *ReportController) getQuarterStart(t time.Time) time.Time {
	quarterMonth := time.Month(((int(t.Month())-1)/3)*3 + 1)
	return time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, t.Location())
}

func (rc *ReportController) calculateGrowthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}
