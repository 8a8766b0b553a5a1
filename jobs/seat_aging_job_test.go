package jobs

import (
	"testing"
	"time"

	"github.com/fitstudio/backend/models"
	"github.com/fitstudio/backend/services"
	"github.com/fitstudio/backend/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAgingSeat(t *testing.T, db *gorm.DB, status models.SeatStatus, day, start, end int) *models.Seat {
	t.Helper()
	trainee := models.Trainee{
		CoachID:      uuid.New(),
		CustomerID:   uuid.New(),
		TotalLessons: 10,
		BindStatus:   models.TraineeBound,
	}
	require.NoError(t, db.Create(&trainee).Error)

	seat := models.Seat{
		CoachID:     trainee.CoachID,
		CustomerID:  trainee.CustomerID,
		Day:         day,
		StartMinute: start,
		EndMinute:   end,
		Category:    models.SeatCategoryPrivate,
		Status:      status,
		IsValid:     true,
		Version:     1,
	}
	require.NoError(t, db.Create(&seat).Error)
	return &seat
}

func TestSeatAgingJob(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSeatService(db, services.NewLessonLedger(), noopNotifier{})
	job := NewSeatAgingJob(db, svc)

	yesterday := utils.DayInt(time.Now().AddDate(0, 0, -1))
	tomorrow := utils.DayInt(time.Now().AddDate(0, 0, 1))

	ended := seedAgingSeat(t, db, models.SeatConfirmed, yesterday, 540, 600)
	unconfirmed := seedAgingSeat(t, db, models.SeatConfirmRequired, yesterday, 540, 600)
	future := seedAgingSeat(t, db, models.SeatConfirmed, tomorrow, 540, 600)

	job.Run()

	var stored models.Seat
	require.NoError(t, db.First(&stored, "id = ?", ended.ID).Error)
	assert.Equal(t, models.SeatAttended, stored.Status)

	// the ended lesson consumed a credit
	var record models.LessonRecord
	require.NoError(t, db.First(&record, "seat_id = ?", ended.ID).Error)
	assert.Equal(t, -1, record.Charge)

	stored = models.Seat{}
	require.NoError(t, db.First(&stored, "id = ?", unconfirmed.ID).Error)
	assert.Equal(t, models.SeatConfirmExpired, stored.Status)

	stored = models.Seat{}
	require.NoError(t, db.First(&stored, "id = ?", future.ID).Error)
	assert.Equal(t, models.SeatConfirmed, stored.Status)
	assert.Equal(t, 1, stored.Version)
}

func TestSeatAgingJobSkipsCancelledSeats(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSeatService(db, services.NewLessonLedger(), noopNotifier{})
	job := NewSeatAgingJob(db, svc)

	yesterday := utils.DayInt(time.Now().AddDate(0, 0, -1))
	seat := seedAgingSeat(t, db, models.SeatConfirmed, yesterday, 540, 600)
	require.NoError(t, db.Model(seat).Updates(map[string]interface{}{"is_valid": false}).Error)

	job.Run()

	var stored models.Seat
	require.NoError(t, db.First(&stored, "id = ?", seat.ID).Error)
	assert.Equal(t, models.SeatConfirmed, stored.Status)

	var records int64
	db.Model(&models.LessonRecord{}).Count(&records)
	assert.EqualValues(t, 0, records)
}

func TestExpiredSeatCanStillBeAttended(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSeatService(db, services.NewLessonLedger(), noopNotifier{})
	job := NewSeatAgingJob(db, svc)

	// unconfirmed 9:00-10:00 seat on a past day expires on sweep
	yesterday := utils.DayInt(time.Now().AddDate(0, 0, -1))
	seat := seedAgingSeat(t, db, models.SeatConfirmRequired, yesterday, 540, 600)

	job.Run()

	require.NoError(t, db.First(seat, "id = ?", seat.ID).Error)
	assert.Equal(t, models.SeatConfirmExpired, seat.Status)

	var records int64
	db.Model(&models.LessonRecord{}).Where("seat_id = ?", seat.ID).Count(&records)
	assert.EqualValues(t, 0, records)

	// the coach can still mark it attended after the fact, consuming a credit
	require.NoError(t, svc.Transform(seat, models.SeatAttended))

	var trainee models.Trainee
	require.NoError(t, db.First(&trainee, "coach_id = ? AND customer_id = ?", seat.CoachID, seat.CustomerID).Error)
	assert.Equal(t, 1, trainee.AttendedLessons)
}

func TestSeatAgingJobRerunIsHarmless(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSeatService(db, services.NewLessonLedger(), noopNotifier{})
	job := NewSeatAgingJob(db, svc)

	yesterday := utils.DayInt(time.Now().AddDate(0, 0, -1))
	seat := seedAgingSeat(t, db, models.SeatConfirmed, yesterday, 540, 600)

	job.Run()
	job.Run()

	var stored models.Seat
	require.NoError(t, db.First(&stored, "id = ?", seat.ID).Error)
	assert.Equal(t, models.SeatAttended, stored.Status)

	// exactly one debit despite two sweeps
	var records int64
	db.Model(&models.LessonRecord{}).Where("seat_id = ?", seat.ID).Count(&records)
	assert.EqualValues(t, 1, records)
}
