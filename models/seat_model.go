package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeatStatus string

const (
	SeatConfirmRequired SeatStatus = "confirm_required"
	SeatConfirmed       SeatStatus = "confirmed"
	SeatAttended        SeatStatus = "attended"
	SeatConfirmExpired  SeatStatus = "confirm_expired"
)

const (
	SeatCategoryExperience = "experience"
	SeatCategoryPrivate    = "private"
)

// Seat is one scheduled lesson slot between a coach and a customer.
// Day is a YYYYMMDD integer; StartMinute/EndMinute are minutes since
// midnight on that day. A cancelled seat keeps its row with IsValid=false
// and is excluded from all scheduling queries.
type Seat struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CoachID    uuid.UUID  `gorm:"not null;index" json:"coach_id"`
	CustomerID uuid.UUID  `gorm:"not null;index" json:"customer_id"`
	CourseID   *uuid.UUID `json:"course_id"`

	Day         int    `gorm:"not null;index" json:"day"`
	StartMinute int    `gorm:"not null" json:"start_minute"`
	EndMinute   int    `gorm:"not null" json:"end_minute"`
	Category    string `gorm:"size:20;not null;default:'private'" json:"category"`

	Status  SeatStatus `gorm:"size:20;not null;default:'confirm_required'" json:"status"`
	IsValid bool       `gorm:"not null;default:true;index" json:"is_valid"`
	Version int        `gorm:"not null;default:1" json:"-"`

	ReservedAt  *time.Time `json:"reserved_at"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CanceledAt  *time.Time `json:"canceled_at"`

	Coach    User `gorm:"foreignkey:CoachID" json:"coach,omitempty"`
	Customer User `gorm:"foreignkey:CustomerID" json:"customer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Seat) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
