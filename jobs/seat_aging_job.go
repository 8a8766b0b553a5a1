package jobs

import (
	"log"
	"time"

	"github.com/fitstudio/backend/models"
	"github.com/fitstudio/backend/services"
	"github.com/fitstudio/backend/utils"
	"gorm.io/gorm"
)

// SeatAgingJob runs every minute and ages seats by wall-clock time:
// confirmed seats whose lesson has ended become attended (consuming a
// lesson credit), and unconfirmed seats whose start has passed expire.
// Each seat transitions independently; one failure never aborts the
// batch. Re-running is harmless because the filters exclude anything
// already moved on.
type SeatAgingJob struct {
	db    *gorm.DB
	seats *services.SeatService
}

func NewSeatAgingJob(db *gorm.DB, seats *services.SeatService) *SeatAgingJob {
	return &SeatAgingJob{db: db, seats: seats}
}

func (j *SeatAgingJob) Run() {
	now := time.Now()
	day := utils.DayInt(now)
	minute := utils.MinuteOfDay(now)

	j.age(models.SeatConfirmed, models.SeatAttended,
		"is_valid = ? AND status = ? AND (day < ? OR (day = ? AND end_minute <= ?))",
		true, models.SeatConfirmed, day, day, minute)

	j.age(models.SeatConfirmRequired, models.SeatConfirmExpired,
		"is_valid = ? AND status = ? AND (day < ? OR (day = ? AND start_minute <= ?))",
		true, models.SeatConfirmRequired, day, day, minute)
}

func (j *SeatAgingJob) age(from, to models.SeatStatus, query string, args ...interface{}) {
	var seats []models.Seat
	if err := j.db.Where(query, args...).Find(&seats).Error; err != nil {
		log.Printf("Error scanning %s seats: %v", from, err)
		return
	}

	moved := 0
	for i := range seats {
		if err := j.seats.Transform(&seats[i], to); err != nil {
			log.Printf("Error aging seat %s to %s: %v", seats[i].ID, to, err)
			continue
		}
		moved++
	}
	if moved > 0 {
		log.Printf("Aged %d seat(s) from %s to %s.", moved, from, to)
	}
}
