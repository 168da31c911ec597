// controllers/payment.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"gymtrack-backend/config"
	"gymtrack-backend/models"
	"gymtrack-backend/services"
	"gymtrack-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePaymentInput defines the expected JSON structure for recording
// a payment
type CreatePaymentInput struct {
	MemberID     uuid.UUID  `json:"memberId" binding:"required"`
	MembershipID *uuid.UUID `json:"membershipId"`
	Amount       *float64   `json:"amount" binding:"required,gte=0"`
	Method       string     `json:"method" binding:"required,oneof='Credit Card' 'Debit Card' 'Bank Transfer' Cash Check"`
	PaymentDate  *time.Time `json:"paymentDate"`
	Status       string     `json:"status" binding:"omitempty,oneof=completed pending failed"`
	Description  string     `json:"description"`
}

// PaymentView is a payment row with its display fields resolved
type PaymentView struct {
	models.Payment
	MemberName  string `json:"memberName"`
	StatusLabel string `json:"statusLabel"`
}

// CreatePayment records a new payment for a member
func CreatePayment(c *gin.Context) {
	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate member exists
	var member models.Member
	if err := config.DB.First(&member, "id = ?", input.MemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Validate membership belongs to the member when given
	if input.MembershipID != nil {
		var membership models.MemberMembership
		if err := config.DB.Where("id = ? AND member_id = ?", *input.MembershipID, input.MemberID).
			First(&membership).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Membership not found for this member")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	paymentDate := time.Now()
	if input.PaymentDate != nil {
		paymentDate = *input.PaymentDate
	}
	status := input.Status
	if status == "" {
		status = models.PaymentCompleted
	}

	payment := models.Payment{
		MemberID:      input.MemberID,
		MembershipID:  input.MembershipID,
		Amount:        *input.Amount,
		Method:        input.Method,
		PaymentDate:   paymentDate,
		Status:        status,
		TransactionID: newTransactionID(),
		Description:   input.Description,
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayments retrieves payments with an aggregate summary block
func GetPayments(c *gin.Context) {
	var payments []models.Payment
	if err := config.DB.Preload("Member").Preload("Membership.Plan").
		Order("payment_date DESC").Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	// Summary totals cover all payments, not just the filtered page
	summary := gin.H{
		"totalRevenue":      services.SumCompleted(payments),
		"pendingAmount":     services.SumPending(payments),
		"totalTransactions": len(payments),
	}

	statusFilter := c.Query("status")
	search := strings.ToLower(c.Query("search"))

	views := []PaymentView{}
	for _, p := range payments {
		if statusFilter != "" && statusFilter != "All" && utils.PaymentStatusLabel(p.Status) != statusFilter {
			continue
		}
		name := p.Member.FullName()
		if search != "" &&
			!strings.Contains(strings.ToLower(name), search) &&
			!strings.Contains(strings.ToLower(p.TransactionID), search) {
			continue
		}
		views = append(views, PaymentView{
			Payment:     p,
			MemberName:  name,
			StatusLabel: utils.PaymentStatusLabel(p.Status),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": views,
		"summary":  summary,
	})
}

// GetPayment retrieves a specific payment by ID
func GetPayment(c *gin.Context) {
	paymentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment ID format")
		return
	}

	var payment models.Payment
	if err := config.DB.Preload("Member").Preload("Membership.Plan").
		First(&payment, "id = ?", paymentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, payment)
}

// newTransactionID builds a display id on a fresh uuid; the column
// carries a unique index, so the id must never repeat.
func newTransactionID() string {
	return "TXN" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
}
