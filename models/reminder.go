package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReminderMembershipExpiry = "membership_expiry"
	ReminderPaymentDue       = "payment_due"
	ReminderPaymentOverdue   = "payment_overdue"
	ReminderFollowUp         = "follow_up"
)

// Reminder is a follow-up item surfaced for manual resolution. Rows
// only move between pending and completed by explicit user action.
type Reminder struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	MemberID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	MembershipID *uuid.UUID `gorm:"type:uuid;index"`

	Type     string    `gorm:"type:varchar(30);not null"`
	Message  string    `gorm:"type:text;not null"`
	DueDate  time.Time `gorm:"not null"`
	Priority string    `gorm:"type:varchar(10);default:'medium'"` // high, medium, low
	Status   string    `gorm:"type:varchar(20);default:'pending'"` // pending, completed

	SentAt    *time.Time
	SendError string `gorm:"type:text"`

	Member     Member            `gorm:"foreignKey:MemberID"`
	Membership *MemberMembership `gorm:"foreignKey:MembershipID"`

	gorm.Model
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
