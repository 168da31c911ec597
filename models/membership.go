package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberMembership binds a member to a plan for a date range. The end
// date is computed from the plan's duration once, at creation, and is
// never recomputed if the plan changes afterwards.
type MemberMembership struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	MemberID uuid.UUID `gorm:"type:uuid;index;not null"`
	PlanID   uuid.UUID `gorm:"type:uuid;index;not null"`

	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	Status    string    `gorm:"type:varchar(20);default:'active'"` // active, expired, cancelled

	Member Member         `gorm:"foreignKey:MemberID"`
	Plan   MembershipPlan `gorm:"foreignKey:PlanID"`

	gorm.Model
}

func (m *MemberMembership) BeforeCreate(tx *gorm.DB) (err error) {
	m.ID = uuid.New()
	return
}
