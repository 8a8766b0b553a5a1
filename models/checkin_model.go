package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckIn is one daily studio check-in by a customer. Day uses the same
// YYYYMMDD encoding as Seat so streaks can be computed with integer math.
type CheckIn struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"not null;index:idx_checkin_day" json:"customer_id"`
	CoachID    uuid.UUID `gorm:"not null;index" json:"coach_id"`

	Day      int     `gorm:"not null;index:idx_checkin_day" json:"day"`
	Note     *string `gorm:"size:255" json:"note"`
	PhotoURL *string `gorm:"size:255" json:"photo_url"`

	Customer User `gorm:"foreignkey:CustomerID" json:"customer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *CheckIn) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
