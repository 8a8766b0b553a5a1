package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Phone    *string   `gorm:"size:20;unique" json:"phone"`
	Email    *string   `gorm:"size:255;unique" json:"email"`
	Password string    `json:"-"`
	Role     string    `gorm:"size:20;not null;default:'customer'" json:"role"`

	WechatOpenID *string `gorm:"size:64;unique" json:"-"`
	AvatarURL    *string `gorm:"size:255" json:"avatar_url"`
	StudioName   *string `gorm:"size:255" json:"studio_name"`

	IsActive bool `gorm:"default:true" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
