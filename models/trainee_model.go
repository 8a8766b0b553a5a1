package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TraineeBound   = "bound"
	TraineeUnbound = "unbound"
)

// Trainee is the durable coach-customer relationship carrying the lesson
// balance. AttendedLessons is only ever mutated by the lesson ledger, in
// lockstep with a seat transition into or out of "attended".
type Trainee struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CoachID    uuid.UUID `gorm:"not null;index:idx_trainee_pair" json:"coach_id"`
	CustomerID uuid.UUID `gorm:"not null;index:idx_trainee_pair" json:"customer_id"`

	AttendedLessons int    `gorm:"not null;default:0" json:"attended_lessons"`
	TotalLessons    int    `gorm:"not null;default:0" json:"total_lessons"`
	BindStatus      string `gorm:"size:20;not null;default:'bound'" json:"bind_status"`

	Coach    User `gorm:"foreignkey:CoachID" json:"coach,omitempty"`
	Customer User `gorm:"foreignkey:CustomerID" json:"customer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Trainee) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
