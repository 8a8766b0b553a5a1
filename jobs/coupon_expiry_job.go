package jobs

import (
	"log"
	"time"

	"github.com/fitstudio/backend/models"
	"gorm.io/gorm"
)

// CouponExpiryJob flips claimed coupons past their validity window to
// expired. A single UPDATE keeps the sweep idempotent.
type CouponExpiryJob struct {
	db *gorm.DB
}

func NewCouponExpiryJob(db *gorm.DB) *CouponExpiryJob {
	return &CouponExpiryJob{db: db}
}

func (j *CouponExpiryJob) Run() {
	result := j.db.Model(&models.Coupon{}).
		Where("status = ? AND valid_until < ?", models.CouponClaimed, time.Now()).
		Update("status", models.CouponExpired)

	if result.Error != nil {
		log.Printf("Error expiring coupons: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Expired %d coupon(s).", result.RowsAffected)
	}
}
