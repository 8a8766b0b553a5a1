package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MonthlyReport aggregates one trainee's attended lessons for one calendar
// month. Rows are produced by the monthly report job and are unique per
// (coach, customer, year, month).
type MonthlyReport struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CoachID    uuid.UUID `gorm:"not null;index:idx_report_month" json:"coach_id"`
	CustomerID uuid.UUID `gorm:"not null;index:idx_report_month" json:"customer_id"`

	Year            int `gorm:"not null;index:idx_report_month" json:"year"`
	Month           int `gorm:"not null;index:idx_report_month" json:"month"`
	AttendedLessons int `gorm:"not null;default:0" json:"attended_lessons"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *MonthlyReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
