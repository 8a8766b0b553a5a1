package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CoachID uuid.UUID `gorm:"not null;index" json:"coach_id"`

	Title       string  `gorm:"size:255;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	Category    string  `gorm:"size:20;not null;default:'private'" json:"category"`
	Price       float64 `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	LessonCount int     `gorm:"not null;default:1" json:"lesson_count"`

	CoverURL  *string `gorm:"size:255" json:"cover_url"`
	PosterURL *string `gorm:"size:255" json:"poster_url"`

	Coach User `gorm:"foreignkey:CoachID" json:"coach,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
