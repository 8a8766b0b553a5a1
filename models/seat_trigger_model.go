package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeatTrigger is a weekly recurrence template: "this customer trains with
// this coach every <Weekday> at <StartMinute>". The materialization job
// reads these to create concrete seats one week ahead.
type SeatTrigger struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CoachID    uuid.UUID `gorm:"not null;index" json:"coach_id"`
	CustomerID uuid.UUID `gorm:"not null;index" json:"customer_id"`

	Weekday     int `gorm:"not null;index" json:"weekday"` // 0 = Sunday, matches time.Weekday
	StartMinute int `gorm:"not null" json:"start_minute"`
	EndMinute   int `gorm:"not null" json:"end_minute"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *SeatTrigger) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
