package jobs

import (
	"log"
	"time"

	"github.com/fitstudio/backend/models"
	"github.com/fitstudio/backend/services"
	"gorm.io/gorm"
)

// GroupSettleJob resolves group promotions: full groups become success,
// open groups past their deadline succeed or fail on member count.
type GroupSettleJob struct {
	db     *gorm.DB
	groups *services.GroupBuyService
}

func NewGroupSettleJob(db *gorm.DB, groups *services.GroupBuyService) *GroupSettleJob {
	return &GroupSettleJob{db: db, groups: groups}
}

func (j *GroupSettleJob) Run() {
	now := time.Now()

	var candidates []models.GroupBuy
	err := j.db.
		Where("status = ? OR (status = ? AND deadline < ?)",
			models.GroupBuyFull, models.GroupBuyOpen, now).
		Find(&candidates).Error
	if err != nil {
		log.Printf("Error loading groups to settle: %v", err)
		return
	}

	settled := 0
	for i := range candidates {
		if err := j.groups.Settle(&candidates[i], now); err != nil {
			log.Printf("Error settling group %s: %v", candidates[i].ID, err)
			continue
		}
		settled++
	}
	if settled > 0 {
		log.Printf("Settled %d group(s).", settled)
	}
}
