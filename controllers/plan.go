// controllers/plan.go
package controllers

import (
	"errors"
	"net/http"

	"gymtrack-backend/config"
	"gymtrack-backend/models"
	"gymtrack-backend/services"
	"gymtrack-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePlanInput defines the expected JSON structure for creating a plan.
// Features arrive as a comma-separated string, the way the admin form
// collects them.
type CreatePlanInput struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	Price          *float64 `json:"price" binding:"required,gte=0"`
	DurationMonths int      `json:"durationMonths" binding:"required,min=1"`
	Features       string   `json:"features"`
}

// UpdatePlanInput defines the expected JSON structure for updating a plan
type UpdatePlanInput struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price" binding:"omitempty,gte=0"`
	DurationMonths *int     `json:"durationMonths" binding:"omitempty,min=1"`
	Features       *string  `json:"features"`
	IsActive       *bool    `json:"isActive"`
}

// PlanSummary is a plan plus its active member count
type PlanSummary struct {
	models.MembershipPlan
	MemberCount int `json:"memberCount"`
}

// CreatePlan creates a new membership plan
func CreatePlan(c *gin.Context) {
	var input CreatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	plan := models.MembershipPlan{
		Name:           input.Name,
		Description:    input.Description,
		Price:          *input.Price,
		DurationMonths: input.DurationMonths,
		Features:       utils.ParseFeatures(input.Features),
		IsActive:       true,
	}

	if err := config.DB.Create(&plan).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlans retrieves all plans with their active member counts
func GetPlans(c *gin.Context) {
	var plans []models.MembershipPlan
	if err := config.DB.Order("created_at ASC").Find(&plans).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve plans")
		return
	}

	var memberships []models.MemberMembership
	if err := config.DB.Where("status = ?", "active").Find(&memberships).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve memberships")
		return
	}

	summaries := []PlanSummary{}
	for _, plan := range plans {
		summaries = append(summaries, PlanSummary{
			MembershipPlan: plan,
			MemberCount:    services.CountActiveForPlan(memberships, plan.ID),
		})
	}

	c.JSON(http.StatusOK, summaries)
}

// GetPlan retrieves a specific plan by ID
func GetPlan(c *gin.Context) {
	planUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	var plan models.MembershipPlan
	if err := config.DB.First(&plan, "id = ?", planUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// UpdatePlan updates an existing plan. Changing the duration does not
// touch the end dates of memberships already created from this plan.
func UpdatePlan(c *gin.Context) {
	planUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	var input UpdatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var plan models.MembershipPlan
	if err := config.DB.First(&plan, "id = ?", planUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		plan.Name = *input.Name
	}
	if input.Description != nil {
		plan.Description = *input.Description
	}
	if input.Price != nil {
		plan.Price = *input.Price
	}
	if input.DurationMonths != nil {
		plan.DurationMonths = *input.DurationMonths
	}
	if input.Features != nil {
		plan.Features = utils.ParseFeatures(*input.Features)
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&plan).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan deletes a plan, unless members still hold active
// memberships on it
func DeletePlan(c *gin.Context) {
	planUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	var activeCount int64
	if err := config.DB.Model(&models.MemberMembership{}).
		Where("plan_id = ? AND status = ?", planUUID, "active").
		Count(&activeCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if activeCount > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Cannot delete plan with active members")
		return
	}

	result := config.DB.Where("id = ?", planUUID).Delete(&models.MembershipPlan{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete plan")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted successfully"})
}
