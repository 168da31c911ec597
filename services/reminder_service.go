// services/reminder_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gymtrack-backend/models"
	"gymtrack-backend/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// SweepExpiring creates a membership_expiry reminder for every active
// membership ending within the expiring window that does not already
// have a pending one. It runs synchronously when the user asks for it;
// nothing schedules it.
func (s *ReminderService) SweepExpiring(now time.Time) ([]models.Reminder, error) {
	windowEnd := utils.BeginningOfDay(now).AddDate(0, 0, utils.ExpiringWindowDays)

	var memberships []models.MemberMembership
	if err := s.db.Preload("Member").Preload("Plan").
		Where("status = ? AND end_date >= ? AND end_date <= ?", "active", utils.BeginningOfDay(now), windowEnd).
		Find(&memberships).Error; err != nil {
		return nil, err
	}

	created := []models.Reminder{}
	for _, m := range memberships {
		var existing models.Reminder
		err := s.db.Where("membership_id = ? AND type = ? AND status = ?",
			m.ID, models.ReminderMembershipExpiry, "pending").First(&existing).Error
		if err == nil {
			continue // already has a pending reminder
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		days := utils.DaysBetween(now, m.EndDate)
		membershipID := m.ID
		reminder := models.Reminder{
			MemberID:     m.MemberID,
			MembershipID: &membershipID,
			Type:         models.ReminderMembershipExpiry,
			Message:      expiryMessage(m.Plan.Name, days),
			DueDate:      m.EndDate,
			Priority:     expiryPriority(days),
			Status:       "pending",
		}
		if err := s.db.Create(&reminder).Error; err != nil {
			return created, err
		}
		created = append(created, reminder)
	}

	return created, nil
}

// Send delivers a reminder to its member by SMS and records the
// outcome on the row.
func (s *ReminderService) Send(reminder *models.Reminder) error {
	var member models.Member
	if err := s.db.First(&member, "id = ?", reminder.MemberID).Error; err != nil {
		return err
	}
	if member.Phone == "" {
		return errors.New("member has no phone number on file")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(member.Phone)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(fmt.Sprintf("Hi %s, %s", member.FirstName, reminder.Message))

	resp, err := s.client.Api.CreateMessage(params)
	now := time.Now()
	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", member.Phone, err)
		reminder.SendError = err.Error()
	} else {
		reminder.SentAt = &now
		reminder.SendError = ""
		if resp.Sid != nil {
			log.Printf("Reminder sent to %s, SID: %s", member.Phone, *resp.Sid)
		}
	}

	if dbErr := s.db.Save(reminder).Error; dbErr != nil {
		return dbErr
	}
	return err
}

func expiryMessage(planName string, daysLeft int) string {
	if planName == "" {
		planName = "Your"
	}
	switch {
	case daysLeft <= 0:
		return fmt.Sprintf("%s membership has expired", planName)
	case daysLeft == 1:
		return fmt.Sprintf("%s membership expires tomorrow", planName)
	default:
		return fmt.Sprintf("%s membership expires in %d days", planName, daysLeft)
	}
}

func expiryPriority(daysLeft int) string {
	if daysLeft <= 3 {
		return "high"
	}
	return "medium"
}
