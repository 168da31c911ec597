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

// CreateMemberInput defines the expected JSON structure for creating a member.
// An optional plan and start date create the first membership in the same
// request; the membership insert is sequenced after the member insert
// because it needs the generated member ID. A start date without a plan
// is rejected.
type CreateMemberInput struct {
	FirstName        string     `json:"firstName" binding:"required"`
	LastName         string     `json:"lastName" binding:"required"`
	Email            string     `json:"email" binding:"required,email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	EmergencyContact string     `json:"emergencyContact"`
	EmergencyPhone   string     `json:"emergencyPhone"`
	Notes            string     `json:"notes"`
	PlanID           *uuid.UUID `json:"planId"`
	StartDate        *time.Time `json:"startDate"`
}

// UpdateMemberInput defines the expected JSON structure for updating a member
type UpdateMemberInput struct {
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Phone            *string `json:"phone"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergencyContact"`
	EmergencyPhone   *string `json:"emergencyPhone"`
	Notes            *string `json:"notes"`
	Status           *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// MemberSummary is the list-view row: stored fields plus the statuses
// derived from the current active membership
type MemberSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Plan          string    `json:"plan"`
	Status        string    `json:"status"`
	JoinDate      string    `json:"joinDate"`
	ExpiryDate    string    `json:"expiryDate"`
	PaymentStatus string    `json:"paymentStatus"`
}

// CreateMember creates a new member, optionally with their first membership
func CreateMember(c *gin.Context) {
	var input CreateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	if input.StartDate != nil && input.PlanID == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "startDate requires a planId")
		return
	}

	// Check if email already exists
	var existingMember models.Member
	if err := config.DB.Where("email = ?", input.Email).
		First(&existingMember).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Member with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// Resolve the plan up front so a bad plan ID fails before anything
	// is written
	var plan models.MembershipPlan
	if input.PlanID != nil {
		if err := config.DB.Where("id = ? AND is_active = true", *input.PlanID).
			First(&plan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Membership plan not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	member := models.Member{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		Phone:            input.Phone,
		Address:          input.Address,
		EmergencyContact: input.EmergencyContact,
		EmergencyPhone:   input.EmergencyPhone,
		Notes:            input.Notes,
		Status:           "active",
	}

	var membership *models.MemberMembership
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		if input.PlanID != nil {
			startDate := utils.BeginningOfDay(time.Now())
			if input.StartDate != nil {
				startDate = utils.BeginningOfDay(*input.StartDate)
			}
			membership = &models.MemberMembership{
				MemberID:  member.ID,
				PlanID:    plan.ID,
				StartDate: startDate,
				EndDate:   utils.ComputeEndDate(startDate, plan.DurationMonths),
				Status:    "active",
			}
			if err := tx.Create(membership).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create member")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"member":     member,
		"membership": membership,
	})
}

// GetMembers retrieves all members with their derived membership status
func GetMembers(c *gin.Context) {
	query := config.DB.Model(&models.Member{}).
		Preload("Memberships", "status = ?", "active").
		Preload("Memberships.Plan").
		Order("created_at DESC")

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
			pattern, pattern, pattern)
	}

	var members []models.Member
	if err := query.Find(&members).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve members")
		return
	}

	statusFilter := c.Query("status")
	today := time.Now()
	summaries := []MemberSummary{}
	for _, member := range members {
		summary := summarizeMember(member, today)
		if statusFilter != "" && statusFilter != "All" && summary.Status != statusFilter {
			continue
		}
		summaries = append(summaries, summary)
	}

	c.JSON(http.StatusOK, summaries)
}

// summarizeMember projects a member row plus its current active
// membership into the list-view shape. Status is recomputed from the
// end date on every read, never persisted.
func summarizeMember(member models.Member, today time.Time) MemberSummary {
	summary := MemberSummary{
		ID:            member.ID,
		Name:          member.FullName(),
		Email:         member.Email,
		Phone:         member.Phone,
		Plan:          "No Plan",
		JoinDate:      member.CreatedAt.Format("2006-01-02"),
		ExpiryDate:    "N/A",
		PaymentStatus: "Due",
	}

	var endDate *time.Time
	if len(member.Memberships) > 0 {
		active := member.Memberships[0]
		endDate = &active.EndDate
		summary.Plan = active.Plan.Name
		summary.ExpiryDate = active.EndDate.Format("2006-01-02")
		if active.EndDate.After(today) {
			summary.PaymentStatus = "Paid"
		}
	}
	summary.Status = utils.ClassifyMembershipStatus(endDate, member.Status, today)

	return summary
}

// GetMember retrieves a specific member by ID
func GetMember(c *gin.Context) {
	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	var member models.Member
	if err := config.DB.
		Preload("Memberships").
		Preload("Memberships.Plan").
		First(&member, "id = ?", memberUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateMember updates an existing member
func UpdateMember(c *gin.Context) {
	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	var input UpdateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Retrieve existing member
	var member models.Member
	if err := config.DB.First(&member, "id = ?", memberUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.FirstName != nil {
		member.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		member.LastName = *input.LastName
	}
	if input.Email != nil && *input.Email != member.Email {
		var existingMember models.Member
		if err := config.DB.Where("email = ?", *input.Email).
			First(&existingMember).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Another member with this email already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		member.Email = *input.Email
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		member.Phone = *input.Phone
	}
	if input.Address != nil {
		member.Address = *input.Address
	}
	if input.EmergencyContact != nil {
		member.EmergencyContact = *input.EmergencyContact
	}
	if input.EmergencyPhone != nil {
		member.EmergencyPhone = *input.EmergencyPhone
	}
	if input.Notes != nil {
		member.Notes = *input.Notes
	}
	if input.Status != nil {
		member.Status = *input.Status
	}

	if err := config.DB.Save(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update member")
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember removes a member. Deletion is blocked while the member
// holds an active membership; otherwise the member's memberships,
// payments and reminders go with them in one transaction.
func DeleteMember(c *gin.Context) {
	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	var member models.Member
	if err := config.DB.First(&member, "id = ?", memberUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var activeCount int64
	if err := config.DB.Model(&models.MemberMembership{}).
		Where("member_id = ? AND status = ?", memberUUID, "active").
		Count(&activeCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if activeCount > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Cannot delete member with an active membership")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ?", memberUUID).Delete(&models.Reminder{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", memberUUID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", memberUUID).Delete(&models.MemberMembership{}).Error; err != nil {
			return err
		}
		return tx.Delete(&member).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
