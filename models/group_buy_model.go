package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupBuyStatus string

const (
	GroupBuyOpen    GroupBuyStatus = "open"
	GroupBuyFull    GroupBuyStatus = "full"
	GroupBuySuccess GroupBuyStatus = "success"
	GroupBuyFailed  GroupBuyStatus = "failed"
)

// GroupBuy is a pinduoduo-style group promotion on a course: a customer
// opens a group, others join until MinCount is reached or the deadline
// passes. The deadline job settles open groups either way.
type GroupBuy struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CourseID uuid.UUID `gorm:"not null;index" json:"course_id"`
	OpenerID uuid.UUID `gorm:"not null" json:"opener_id"`

	Status      GroupBuyStatus `gorm:"size:20;not null;default:'open';index" json:"status"`
	MinCount    int            `gorm:"not null" json:"min_count"`
	MemberCount int            `gorm:"not null;default:0" json:"member_count"`
	GroupPrice  float64        `gorm:"type:numeric(10,2);not null" json:"group_price"`
	Deadline    time.Time      `gorm:"not null;index" json:"deadline"`

	Course  Course           `gorm:"foreignkey:CourseID" json:"course,omitempty"`
	Members []GroupBuyMember `gorm:"foreignkey:GroupBuyID" json:"members,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *GroupBuy) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type GroupBuyMember struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	GroupBuyID uuid.UUID `gorm:"not null;index" json:"group_buy_id"`
	CustomerID uuid.UUID `gorm:"not null;index" json:"customer_id"`

	Customer User `gorm:"foreignkey:CustomerID" json:"customer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *GroupBuyMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
