package services

import (
	"log"
	"time"

	"github.com/fitstudio/backend/models"
	"github.com/fitstudio/backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportNotifier is told about each freshly generated monthly report.
type ReportNotifier interface {
	MonthlyReportReady(report models.MonthlyReport)
}

// ReportService materializes per-trainee monthly attendance reports from
// the lesson record trail.
type ReportService struct {
	db       *gorm.DB
	notifier ReportNotifier
}

func NewReportService(db *gorm.DB, notifier ReportNotifier) *ReportService {
	return &ReportService{db: db, notifier: notifier}
}

type monthlyTotal struct {
	CoachID    uuid.UUID
	CustomerID uuid.UUID
	Attended   int
}

// GenerateMonthlyReports aggregates the previous calendar month relative
// to now. Re-running for the same month creates no duplicate rows.
func (s *ReportService) GenerateMonthlyReports(now time.Time) (int, error) {
	year, month := utils.PrevMonth(now)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0)

	var totals []monthlyTotal
	err := s.db.Model(&models.LessonRecord{}).
		Select("coach_id, customer_id, SUM(-charge) as attended").
		Where("executed_at >= ? AND executed_at < ?", start, end).
		Group("coach_id, customer_id").
		Scan(&totals).Error
	if err != nil {
		return 0, err
	}

	created := 0
	for _, total := range totals {
		if total.Attended <= 0 {
			continue
		}

		var existing int64
		s.db.Model(&models.MonthlyReport{}).
			Where("coach_id = ? AND customer_id = ? AND year = ? AND month = ?",
				total.CoachID, total.CustomerID, year, month).
			Count(&existing)
		if existing > 0 {
			continue
		}

		report := models.MonthlyReport{
			CoachID:         total.CoachID,
			CustomerID:      total.CustomerID,
			Year:            year,
			Month:           month,
			AttendedLessons: total.Attended,
		}
		if err := s.db.Create(&report).Error; err != nil {
			log.Printf("Error creating monthly report for coach %s customer %s: %v",
				total.CoachID, total.CustomerID, err)
			continue
		}
		created++

		if s.notifier != nil {
			go s.notifier.MonthlyReportReady(report)
		}
	}
	return created, nil
}
