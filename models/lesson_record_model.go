package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LessonRecordAttended = "attended"
	LessonRecordCancel   = "cancel"
)

// LessonRecord is an append-only audit row for one ledger entry. Charge is
// -1 for a consumed lesson and +1 for a reversal; rows are never updated
// or deleted, so the trail always explains every counter change on Trainee.
type LessonRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CoachID    uuid.UUID `gorm:"not null;index" json:"coach_id"`
	CustomerID uuid.UUID `gorm:"not null;index" json:"customer_id"`
	SeatID     uuid.UUID `gorm:"not null;index" json:"seat_id"`

	Charge int    `gorm:"not null" json:"charge"`
	Status string `gorm:"size:20;not null" json:"status"`

	ExecutedAt time.Time `gorm:"not null" json:"executed_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *LessonRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
