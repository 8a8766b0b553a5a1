package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CouponClaimed  = "claimed"
	CouponRedeemed = "redeemed"
	CouponExpired  = "expired"
)

type CouponTemplate struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CoachID uuid.UUID `gorm:"not null;index" json:"coach_id"`

	Title     string  `gorm:"size:255;not null" json:"title"`
	Discount  float64 `gorm:"type:numeric(10,2);not null" json:"discount"`
	ValidDays int     `gorm:"not null;default:30" json:"valid_days"`
	Stock     int     `gorm:"not null;default:0" json:"stock"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *CouponTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type Coupon struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TemplateID uuid.UUID `gorm:"not null;index" json:"template_id"`
	CustomerID uuid.UUID `gorm:"not null;index" json:"customer_id"`

	Status     string     `gorm:"size:20;not null;default:'claimed';index" json:"status"`
	ValidUntil time.Time  `gorm:"not null" json:"valid_until"`
	RedeemedAt *time.Time `json:"redeemed_at"`

	Template CouponTemplate `gorm:"foreignkey:TemplateID" json:"template,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
