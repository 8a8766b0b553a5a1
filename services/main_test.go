package services

import (
	"testing"

	"github.com/fitstudio/backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Seat{},
		&models.Trainee{},
		&models.LessonRecord{},
		&models.Course{},
		&models.GroupBuy{},
		&models.GroupBuyMember{},
		&models.MonthlyReport{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// noopNotifier satisfies every notifier interface so services can be
// constructed without a broker in tests.
type noopNotifier struct{}

func (noopNotifier) SeatConfirmed(models.Seat)               {}
func (noopNotifier) SeatCancelled(models.Seat)               {}
func (noopNotifier) GroupSettled(models.GroupBuy)            {}
func (noopNotifier) MonthlyReportReady(models.MonthlyReport) {}
