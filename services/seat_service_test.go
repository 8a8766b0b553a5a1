package services

import (
	"errors"
	"testing"
	"time"

	"github.com/fitstudio/backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSeat(t *testing.T, db *gorm.DB, status models.SeatStatus) (*models.Seat, *models.Trainee) {
	t.Helper()
	trainee := models.Trainee{
		CoachID:      uuid.New(),
		CustomerID:   uuid.New(),
		TotalLessons: 10,
		BindStatus:   models.TraineeBound,
	}
	require.NoError(t, db.Create(&trainee).Error)

	now := time.Now()
	seat := models.Seat{
		CoachID:     trainee.CoachID,
		CustomerID:  trainee.CustomerID,
		Day:         20240101,
		StartMinute: 540,
		EndMinute:   600,
		Category:    models.SeatCategoryPrivate,
		Status:      status,
		IsValid:     true,
		Version:     1,
		ReservedAt:  &now,
	}
	require.NoError(t, db.Create(&seat).Error)
	return &seat, &trainee
}

func TestTransformConfirm(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeatService(db, NewLessonLedger(), noopNotifier{})
	seat, trainee := seedSeat(t, db, models.SeatConfirmRequired)

	require.NoError(t, svc.Transform(seat, models.SeatConfirmed))

	var stored models.Seat
	require.NoError(t, db.First(&stored, "id = ?", seat.ID).Error)
	assert.Equal(t, models.SeatConfirmed, stored.Status)
	assert.Equal(t, 2, stored.Version)
	assert.NotNil(t, stored.ConfirmedAt)

	// confirmation alone never touches the balance
	var reloaded models.Trainee
	require.NoError(t, db.First(&reloaded, "id = ?", trainee.ID).Error)
	assert.Equal(t, 0, reloaded.AttendedLessons)

	var records int64
	db.Model(&models.LessonRecord{}).Count(&records)
	assert.EqualValues(t, 0, records)
}

func TestTransformAttendDebitsLedger(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeatService(db, NewLessonLedger(), noopNotifier{})

	for _, from := range []models.SeatStatus{
		models.SeatConfirmRequired,
		models.SeatConfirmed,
		models.SeatConfirmExpired,
	} {
		t.Run(string(from), func(t *testing.T) {
			seat, trainee := seedSeat(t, db, from)

			require.NoError(t, svc.Transform(seat, models.SeatAttended))
			assert.Equal(t, models.SeatAttended, seat.Status)

			var reloaded models.Trainee
			require.NoError(t, db.First(&reloaded, "id = ?", trainee.ID).Error)
			assert.Equal(t, 1, reloaded.AttendedLessons)

			var record models.LessonRecord
			require.NoError(t, db.First(&record, "seat_id = ?", seat.ID).Error)
			assert.Equal(t, -1, record.Charge)
			assert.Equal(t, models.LessonRecordAttended, record.Status)
		})
	}
}

func TestTransformIllegalMoveLeavesSeatUntouched(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeatService(db, NewLessonLedger(), noopNotifier{})

	cases := []struct {
		name string
		from models.SeatStatus
		to   models.SeatStatus
	}{
		{"confirmed to expired", models.SeatConfirmed, models.SeatConfirmExpired},
		{"attended to attended", models.SeatAttended, models.SeatAttended},
		{"attended to confirmed", models.SeatAttended, models.SeatConfirmed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seat, trainee := seedSeat(t, db, tc.from)

			err := svc.Transform(seat, tc.to)

			var invalid *InvalidTransitionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.from, invalid.From)
			assert.Equal(t, tc.to, invalid.To)

			var stored models.Seat
			require.NoError(t, db.First(&stored, "id = ?", seat.ID).Error)
			assert.Equal(t, tc.from, stored.Status)
			assert.Equal(t, 1, stored.Version)

			var reloaded models.Trainee
			require.NoError(t, db.First(&reloaded, "id = ?", trainee.ID).Error)
			assert.Equal(t, 0, reloaded.AttendedLessons)
		})
	}
}

func TestTransformRejectsCancelledSeat(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeatService(db, NewLessonLedger(), noopNotifier{})
	seat, _ := seedSeat(t, db, models.SeatConfirmRequired)
	require.NoError(t, svc.Cancel(seat))

	err := svc.Transform(seat, models.SeatConfirmed)
	assert.True(t, errors.Is(err, ErrSeatCancelled))
}

func TestTransformStaleVersionConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeatService(db, NewLessonLedger(), noopNotifier{})
	seat, _ := seedSeat(t, db, models.SeatConfirmRequired)

	stale := *seat
	require.NoError(t, svc.Transform(seat, models.SeatConfirmed))

	err := svc.Transform(&stale, models.SeatConfirmExpired)
	assert.True(t, errors.Is(err, ErrSeatConflict))

	// the winning write survives
	var stored models.Seat
	require.NoError(t, db.First(&stored, "id = ?", seat.ID).Error)
	assert.Equal(t, models.SeatConfirmed, stored.Status)
}

func TestCancelAttendedRestoresBalance(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeatService(db, NewLessonLedger(), noopNotifier{})
	seat, trainee := seedSeat(t, db, models.SeatConfirmed)

	require.NoError(t, svc.Transform(seat, models.SeatAttended))
	require.NoError(t, svc.Cancel(seat))

	var stored models.Seat
	require.NoError(t, db.First(&stored, "id = ?", seat.ID).Error)
	assert.False(t, stored.IsValid)
	assert.NotNil(t, stored.CanceledAt)
	// cancellation invalidates, it does not rewrite history
	assert.Equal(t, models.SeatAttended, stored.Status)

	var reloaded models.Trainee
	require.NoError(t, db.First(&reloaded, "id = ?", trainee.ID).Error)
	assert.Equal(t, 0, reloaded.AttendedLessons)

	var records []models.LessonRecord
	require.NoError(t, db.Order("charge").Find(&records, "seat_id = ?", seat.ID).Error)
	require.Len(t, records, 2)
	assert.Equal(t, -1, records[0].Charge)
	assert.Equal(t, +1, records[1].Charge)
	assert.Equal(t, models.LessonRecordCancel, records[1].Status)
}

func TestCancelTwiceRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeatService(db, NewLessonLedger(), noopNotifier{})
	seat, _ := seedSeat(t, db, models.SeatConfirmRequired)

	require.NoError(t, svc.Cancel(seat))
	err := svc.Cancel(seat)
	assert.True(t, errors.Is(err, ErrSeatCancelled))
}

func TestCancelUnattendedLeavesLedgerAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeatService(db, NewLessonLedger(), noopNotifier{})
	seat, trainee := seedSeat(t, db, models.SeatConfirmed)

	require.NoError(t, svc.Cancel(seat))

	var reloaded models.Trainee
	require.NoError(t, db.First(&reloaded, "id = ?", trainee.ID).Error)
	assert.Equal(t, 0, reloaded.AttendedLessons)

	var records int64
	db.Model(&models.LessonRecord{}).Count(&records)
	assert.EqualValues(t, 0, records)
}
