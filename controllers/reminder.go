// controllers/reminder.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"gymtrack-backend/config"
	"gymtrack-backend/models"
	"gymtrack-backend/services"
	"gymtrack-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateReminderInput defines the expected JSON structure for creating
// a reminder
type CreateReminderInput struct {
	MemberID     uuid.UUID  `json:"memberId" binding:"required"`
	MembershipID *uuid.UUID `json:"membershipId"`
	Type         string     `json:"type" binding:"required,oneof=membership_expiry payment_due payment_overdue follow_up"`
	Message      string     `json:"message" binding:"required"`
	DueDate      time.Time  `json:"dueDate" binding:"required"`
	Priority     string     `json:"priority" binding:"omitempty,oneof=high medium low"`
}

// UpdateReminderStatusInput defines the expected JSON structure for
// resolving or reopening a reminder
type UpdateReminderStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending completed"`
}

// CreateReminder creates a new reminder for a member
func CreateReminder(c *gin.Context) {
	var input CreateReminderInput
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

	priority := input.Priority
	if priority == "" {
		priority = "medium"
	}

	reminder := models.Reminder{
		MemberID:     input.MemberID,
		MembershipID: input.MembershipID,
		Type:         input.Type,
		Message:      input.Message,
		DueDate:      input.DueDate,
		Priority:     priority,
		Status:       "pending",
	}

	if err := config.DB.Create(&reminder).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reminder")
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// GetReminders retrieves reminders, optionally filtered by type and status
func GetReminders(c *gin.Context) {
	query := config.DB.Preload("Member").Order("due_date ASC")

	if reminderType := c.Query("type"); reminderType != "" && reminderType != "All" {
		query = query.Where("type = ?", reminderType)
	}
	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var reminders []models.Reminder
	if err := query.Find(&reminders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminders")
		return
	}

	c.JSON(http.StatusOK, reminders)
}

// UpdateReminderStatus marks a reminder completed, or reopens it.
// These are the only transitions; reminders never expire on their own.
func UpdateReminderStatus(c *gin.Context) {
	reminderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	var input UpdateReminderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var reminder models.Reminder
	if err := config.DB.First(&reminder, "id = ?", reminderUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	reminder.Status = input.Status
	if err := config.DB.Save(&reminder).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reminder")
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// SweepReminders materializes membership-expiry reminders for
// memberships ending within the expiring window. It runs only when
// asked to; there is no scheduler behind it.
func SweepReminders(c *gin.Context) {
	created, err := services.NewReminderService(config.DB).SweepExpiring(time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to sweep reminders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"created": created,
		"count":   len(created),
	})
}

// SendReminder delivers a reminder to the member by SMS
func SendReminder(c *gin.Context) {
	reminderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	var reminder models.Reminder
	if err := config.DB.First(&reminder, "id = ?", reminderUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := services.NewReminderService(config.DB).Send(&reminder); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send reminder: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, reminder)
}
