package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentCompleted = "completed"
	PaymentPending   = "pending"
	PaymentFailed    = "failed"
)

type Payment struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	MemberID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	MembershipID *uuid.UUID `gorm:"type:uuid;index"`

	Amount      float64   `gorm:"type:decimal(10,2);not null"`
	Method      string    `gorm:"not null"` // Credit Card, Debit Card, Bank Transfer, Cash, Check
	PaymentDate time.Time `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);default:'completed'"` // completed, pending, failed

	TransactionID string `gorm:"uniqueIndex;not null"`
	Description   string

	Member     Member            `gorm:"foreignKey:MemberID"`
	Membership *MemberMembership `gorm:"foreignKey:MembershipID"`

	gorm.Model
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
