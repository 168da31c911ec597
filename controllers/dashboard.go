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

type UpcomingPayment struct {
	Member  string  `json:"member"`
	Amount  float64 `json:"amount"`
	DueDate string  `json:"dueDate"`
}

// GetDashboardOverview assembles the landing-page numbers. Revenue and
// expiry figures come from the same reducers the reports use, applied
// to fetched rows, so the dashboard can never disagree with them.
func GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// Member counts
	var totalMembers int64
	config.DB.Model(&models.Member{}).Count(&totalMembers)

	var activeMembers int64
	config.DB.Model(&models.Member{}).Where("status = ?", "active").Count(&activeMembers)

	var newMembersThisMonth int64
	config.DB.Model(&models.Member{}).Where("created_at >= ?", firstOfMonth).Count(&newMembersThisMonth)

	// This month's revenue, completed payments only
	var monthPayments []models.Payment
	if err := config.DB.Where("payment_date >= ?", firstOfMonth).
		Find(&monthPayments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}
	monthlyRevenue := services.SumCompleted(monthPayments)

	var pendingPayments int64
	config.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentPending).Count(&pendingPayments)

	// Memberships expiring in the next 30 days
	var activeMemberships []models.MemberMembership
	if err := config.DB.Where("status = ?", "active").
		Find(&activeMemberships).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve memberships")
		return
	}
	expiringCount := services.CountExpiringWithin(activeMemberships, now, 30)

	// Most recent members with their derived status
	var recent []models.Member
	config.DB.Preload("Memberships", "status = ?", "active").
		Preload("Memberships.Plan").
		Order("created_at DESC").Limit(4).Find(&recent)

	recentMembers := []MemberSummary{}
	for _, member := range recent {
		recentMembers = append(recentMembers, summarizeMember(member, now))
	}

	// Next pending payments
	var pending []models.Payment
	config.DB.Preload("Member").
		Where("status = ?", models.PaymentPending).
		Order("payment_date ASC").Limit(3).Find(&pending)

	upcomingPayments := []UpcomingPayment{}
	for _, p := range pending {
		upcomingPayments = append(upcomingPayments, UpcomingPayment{
			Member:  p.Member.FullName(),
			Amount:  p.Amount,
			DueDate: p.PaymentDate.Format("2006-01-02"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalMembers":        totalMembers,
		"activeMembers":       activeMembers,
		"monthlyRevenue":      monthlyRevenue,
		"expiringMemberships": expiringCount,
		"newMembersThisMonth": newMembersThisMonth,
		"pendingPayments":     pendingPayments,
		"recentMembers":       recentMembers,
		"upcomingPayments":    upcomingPayments,
	})
}
