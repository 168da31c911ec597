package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipPlan struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	Name           string  `gorm:"not null"`
	Description    string  `gorm:"type:text"`
	Price          float64 `gorm:"type:decimal(10,2);not null"`
	DurationMonths int     `gorm:"not null"`

	Features StringList `gorm:"type:jsonb;default:'[]'"`
	IsActive bool       `gorm:"default:true"`

	Memberships []MemberMembership `gorm:"foreignKey:PlanID"`

	gorm.Model
}

func (p *MembershipPlan) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}

// StringList stores an ordered list of strings as jsonb
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &l)
}
