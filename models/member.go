package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Member struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Phone     string
	Address   string

	EmergencyContact string
	EmergencyPhone   string

	Notes  string `gorm:"type:text"`
	Status string `gorm:"type:varchar(20);default:'active'"` // active, inactive

	Memberships []MemberMembership `gorm:"foreignKey:MemberID"`
	Payments    []Payment          `gorm:"foreignKey:MemberID"`
	Reminders   []Reminder         `gorm:"foreignKey:MemberID"`

	gorm.Model
}

func (m *Member) BeforeCreate(tx *gorm.DB) (err error) {
	m.ID = uuid.New()
	return
}

func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}
