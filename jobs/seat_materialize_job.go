package jobs

import (
	"log"
	"time"

	"github.com/fitstudio/backend/models"
	"github.com/fitstudio/backend/utils"
	"gorm.io/gorm"
)

// SeatMaterializeJob turns weekly seat triggers into concrete seats one
// week ahead. Recurring reservations are pre-confirmed, skipping the
// confirm-required step. The (coach, customer, day, start) existence
// check is the sole dedup guard, so the job can re-run for the same
// target week without creating duplicates.
type SeatMaterializeJob struct {
	db *gorm.DB
}

func NewSeatMaterializeJob(db *gorm.DB) *SeatMaterializeJob {
	return &SeatMaterializeJob{db: db}
}

func (j *SeatMaterializeJob) Run() {
	now := time.Now()
	target := now.AddDate(0, 0, 7)
	targetDay := utils.DayInt(target)
	weekday := int(target.Weekday())

	var triggers []models.SeatTrigger
	if err := j.db.Where("weekday = ?", weekday).Find(&triggers).Error; err != nil {
		log.Printf("Error loading seat triggers for weekday %d: %v", weekday, err)
		return
	}

	created := 0
	for _, trigger := range triggers {
		var existing int64
		err := j.db.Model(&models.Seat{}).
			Where("coach_id = ? AND customer_id = ? AND day = ? AND start_minute = ? AND is_valid = ?",
				trigger.CoachID, trigger.CustomerID, targetDay, trigger.StartMinute, true).
			Count(&existing).Error
		if err != nil {
			log.Printf("Error checking existing seat for trigger %s: %v", trigger.ID, err)
			continue
		}
		if existing > 0 {
			continue
		}

		seat := models.Seat{
			CoachID:     trigger.CoachID,
			CustomerID:  trigger.CustomerID,
			Day:         targetDay,
			StartMinute: trigger.StartMinute,
			EndMinute:   trigger.EndMinute,
			Category:    models.SeatCategoryPrivate,
			Status:      models.SeatConfirmed,
			IsValid:     true,
			Version:     1,
			ReservedAt:  &now,
			ConfirmedAt: &now,
		}
		if err := j.db.Create(&seat).Error; err != nil {
			log.Printf("Error materializing seat for trigger %s: %v", trigger.ID, err)
			continue
		}
		created++
	}

	if created > 0 {
		log.Printf("Materialized %d recurring seat(s) for day %d.", created, targetDay)
	}
}
