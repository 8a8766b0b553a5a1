package services

import (
	"fmt"
	"time"

	"github.com/fitstudio/backend/models"
	"gorm.io/gorm"
)

// LessonLedger records lesson consumption against a trainee's balance.
// Both operations run on the caller's transaction so the counter update
// and the audit row commit or roll back together, and both are invoked
// only from seat transitions: every counter change has a LessonRecord
// explaining it.
type LessonLedger struct{}

func NewLessonLedger() *LessonLedger {
	return &LessonLedger{}
}

// Debit consumes one lesson for the seat's trainee: attended_lessons goes
// up by one and a charge=-1 record is appended.
func (l *LessonLedger) Debit(tx *gorm.DB, seat *models.Seat, now time.Time) error {
	return l.apply(tx, seat, now, -1, models.LessonRecordAttended)
}

// Credit reverses one consumed lesson, appending a charge=+1 record.
func (l *LessonLedger) Credit(tx *gorm.DB, seat *models.Seat, now time.Time) error {
	return l.apply(tx, seat, now, +1, models.LessonRecordCancel)
}

func (l *LessonLedger) apply(tx *gorm.DB, seat *models.Seat, now time.Time, charge int, status string) error {
	var trainee models.Trainee
	err := tx.Where("coach_id = ? AND customer_id = ?", seat.CoachID, seat.CustomerID).
		First(&trainee).Error
	if err != nil {
		return fmt.Errorf("ledger: trainee for coach %s and customer %s: %w", seat.CoachID, seat.CustomerID, err)
	}

	// charge is the signed ledger entry; the attended counter moves the
	// opposite way (a -1 charge consumes a lesson).
	err = tx.Model(&models.Trainee{}).Where("id = ?", trainee.ID).
		Update("attended_lessons", gorm.Expr("attended_lessons - ?", charge)).Error
	if err != nil {
		return fmt.Errorf("ledger: update attended_lessons: %w", err)
	}

	record := models.LessonRecord{
		CoachID:    seat.CoachID,
		CustomerID: seat.CustomerID,
		SeatID:     seat.ID,
		Charge:     charge,
		Status:     status,
		ExecutedAt: now,
	}
	if err := tx.Create(&record).Error; err != nil {
		return fmt.Errorf("ledger: append record: %w", err)
	}
	return nil
}
