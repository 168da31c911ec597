// controllers/membership.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"gymtrack-backend/config"
	"gymtrack-backend/models"
	"gymtrack-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateMembershipInput defines the expected JSON structure for
// creating a membership
type CreateMembershipInput struct {
	MemberID  uuid.UUID  `json:"memberId" binding:"required"`
	PlanID    uuid.UUID  `json:"planId" binding:"required"`
	StartDate *time.Time `json:"startDate"`
}

// UpdateMembershipStatusInput defines the expected JSON structure for
// a manual status transition
type UpdateMembershipStatusInput struct {
	Status string `json:"status" binding:"required,oneof=active expired cancelled"`
}

// CreateMembership subscribes a member to a plan. The end date is
// computed from the plan's duration here, once, and persisted; reads
// never recompute it. A member may hold at most one active membership
// at a time.
func CreateMembership(c *gin.Context) {
	var input CreateMembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var member models.Member
	if err := config.DB.First(&member, "id = ?", input.MemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var plan models.MembershipPlan
	if err := config.DB.Where("id = ? AND is_active = true", input.PlanID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Membership plan not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Guard against a second simultaneously-active membership
	var existing models.MemberMembership
	if err := config.DB.Where("member_id = ? AND status = ?", input.MemberID, "active").
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Member already has an active membership")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	startDate := utils.BeginningOfDay(time.Now())
	if input.StartDate != nil {
		startDate = utils.BeginningOfDay(*input.StartDate)
	}

	membership := models.MemberMembership{
		MemberID:  member.ID,
		PlanID:    plan.ID,
		StartDate: startDate,
		EndDate:   utils.ComputeEndDate(startDate, plan.DurationMonths),
		Status:    "active",
	}

	if err := config.DB.Create(&membership).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create membership")
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// GetMemberships retrieves all memberships, optionally filtered by
// status or member
func GetMemberships(c *gin.Context) {
	query := config.DB.Preload("Member").Preload("Plan").Order("start_date DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if memberID := c.Query("memberId"); memberID != "" {
		memberUUID, err := uuid.Parse(memberID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
			return
		}
		query = query.Where("member_id = ?", memberUUID)
	}

	var memberships []models.MemberMembership
	if err := query.Find(&memberships).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve memberships")
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// UpdateMembershipStatus transitions a membership between active,
// expired and cancelled
func UpdateMembershipStatus(c *gin.Context) {
	membershipUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid membership ID format")
		return
	}

	var input UpdateMembershipStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var membership models.MemberMembership
	if err := config.DB.First(&membership, "id = ?", membershipUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Membership not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Re-activating must not sidestep the one-active-membership rule
	if input.Status == "active" && membership.Status != "active" {
		var other models.MemberMembership
		if err := config.DB.Where("member_id = ? AND status = ? AND id <> ?",
			membership.MemberID, "active", membership.ID).
			First(&other).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Member already has an active membership")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	membership.Status = input.Status
	if err := config.DB.Save(&membership).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update membership")
		return
	}

	c.JSON(http.StatusOK, membership)
}
