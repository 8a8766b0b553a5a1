package jobs

import (
	"testing"
	"time"

	"github.com/fitstudio/backend/models"
	"github.com/fitstudio/backend/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatMaterializeJob(t *testing.T) {
	db := newTestDB(t)
	job := NewSeatMaterializeJob(db)

	target := time.Now().AddDate(0, 0, 7)
	trigger := models.SeatTrigger{
		CoachID:     uuid.New(),
		CustomerID:  uuid.New(),
		Weekday:     int(target.Weekday()),
		StartMinute: 540,
		EndMinute:   600,
	}
	require.NoError(t, db.Create(&trigger).Error)

	// a trigger for another weekday must not fire
	other := models.SeatTrigger{
		CoachID:     uuid.New(),
		CustomerID:  uuid.New(),
		Weekday:     (int(target.Weekday()) + 1) % 7,
		StartMinute: 600,
		EndMinute:   660,
	}
	require.NoError(t, db.Create(&other).Error)

	job.Run()

	var seats []models.Seat
	require.NoError(t, db.Find(&seats).Error)
	require.Len(t, seats, 1)

	seat := seats[0]
	assert.Equal(t, trigger.CoachID, seat.CoachID)
	assert.Equal(t, trigger.CustomerID, seat.CustomerID)
	assert.Equal(t, utils.DayInt(target), seat.Day)
	assert.Equal(t, 540, seat.StartMinute)
	assert.Equal(t, 600, seat.EndMinute)
	// recurring seats skip the confirm-required step
	assert.Equal(t, models.SeatConfirmed, seat.Status)
	assert.NotNil(t, seat.ConfirmedAt)
	assert.True(t, seat.IsValid)
}

func TestSeatMaterializeJobIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	job := NewSeatMaterializeJob(db)

	target := time.Now().AddDate(0, 0, 7)
	trigger := models.SeatTrigger{
		CoachID:     uuid.New(),
		CustomerID:  uuid.New(),
		Weekday:     int(target.Weekday()),
		StartMinute: 540,
		EndMinute:   600,
	}
	require.NoError(t, db.Create(&trigger).Error)

	job.Run()
	job.Run()

	var count int64
	db.Model(&models.Seat{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSeatMaterializeJobIgnoresCancelledDuplicate(t *testing.T) {
	db := newTestDB(t)
	job := NewSeatMaterializeJob(db)

	target := time.Now().AddDate(0, 0, 7)
	trigger := models.SeatTrigger{
		CoachID:     uuid.New(),
		CustomerID:  uuid.New(),
		Weekday:     int(target.Weekday()),
		StartMinute: 540,
		EndMinute:   600,
	}
	require.NoError(t, db.Create(&trigger).Error)

	// a cancelled seat in the same slot does not block materialization
	cancelled := models.Seat{
		CoachID:     trigger.CoachID,
		CustomerID:  trigger.CustomerID,
		Day:         utils.DayInt(target),
		StartMinute: 540,
		EndMinute:   600,
		Category:    models.SeatCategoryPrivate,
		Status:      models.SeatConfirmed,
		IsValid:     false,
		Version:     2,
	}
	require.NoError(t, db.Create(&cancelled).Error)

	job.Run()

	var count int64
	db.Model(&models.Seat{}).Where("is_valid = ?", true).Count(&count)
	assert.EqualValues(t, 1, count)
}
