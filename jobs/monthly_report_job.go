package jobs

import (
	"log"
	"time"

	"github.com/fitstudio/backend/services"
)

// MonthlyReportJob runs on the first of each month and materializes the
// previous month's attendance reports.
type MonthlyReportJob struct {
	reports *services.ReportService
}

func NewMonthlyReportJob(reports *services.ReportService) *MonthlyReportJob {
	return &MonthlyReportJob{reports: reports}
}

func (j *MonthlyReportJob) Run() {
	log.Println("Running job: MonthlyReportJob...")
	created, err := j.reports.GenerateMonthlyReports(time.Now())
	if err != nil {
		log.Printf("Error generating monthly reports: %v", err)
		return
	}
	log.Printf("Generated %d monthly report(s).", created)
}
