package services

import (
	"testing"
	"time"

	"github.com/fitstudio/backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRecord(t *testing.T, db *gorm.DB, coachID, customerID uuid.UUID, charge int, at time.Time) {
	t.Helper()
	record := models.LessonRecord{
		CoachID:    coachID,
		CustomerID: customerID,
		SeatID:     uuid.New(),
		Charge:     charge,
		Status:     models.LessonRecordAttended,
		ExecutedAt: at,
	}
	if charge > 0 {
		record.Status = models.LessonRecordCancel
	}
	require.NoError(t, db.Create(&record).Error)
}

func TestGenerateMonthlyReports(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, noopNotifier{})

	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	coachID, customerID := uuid.New(), uuid.New()

	// three attended, one reversed: net two lessons
	seedRecord(t, db, coachID, customerID, -1, lastMonth)
	seedRecord(t, db, coachID, customerID, -1, lastMonth.AddDate(0, 0, 2))
	seedRecord(t, db, coachID, customerID, -1, lastMonth.AddDate(0, 0, 4))
	seedRecord(t, db, coachID, customerID, +1, lastMonth.AddDate(0, 0, 5))
	// outside the window
	seedRecord(t, db, coachID, customerID, -1, now.Add(time.Hour))

	created, err := svc.GenerateMonthlyReports(now)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	var report models.MonthlyReport
	require.NoError(t, db.First(&report, "coach_id = ?", coachID).Error)
	assert.Equal(t, 2026, report.Year)
	assert.Equal(t, 7, report.Month)
	assert.Equal(t, 2, report.AttendedLessons)
}

func TestGenerateMonthlyReportsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, noopNotifier{})

	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	seedRecord(t, db, uuid.New(), uuid.New(), -1, now.AddDate(0, 0, -10))

	created, err := svc.GenerateMonthlyReports(now)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	created, err = svc.GenerateMonthlyReports(now)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	var count int64
	db.Model(&models.MonthlyReport{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGenerateMonthlyReportsSkipsNetZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, noopNotifier{})

	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	coachID, customerID := uuid.New(), uuid.New()
	seedRecord(t, db, coachID, customerID, -1, now.AddDate(0, 0, -10))
	seedRecord(t, db, coachID, customerID, +1, now.AddDate(0, 0, -9))

	created, err := svc.GenerateMonthlyReports(now)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}
