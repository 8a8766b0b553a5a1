package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Video struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CoachID  uuid.UUID  `gorm:"not null;index" json:"coach_id"`
	CourseID *uuid.UUID `gorm:"index" json:"course_id"`

	Title    string  `gorm:"size:255;not null" json:"title"`
	URL      string  `gorm:"size:255;not null" json:"url"`
	CoverURL *string `gorm:"size:255" json:"cover_url"`
	Duration int     `gorm:"not null;default:0" json:"duration"` // seconds

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
