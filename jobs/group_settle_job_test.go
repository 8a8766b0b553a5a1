package jobs

import (
	"testing"
	"time"

	"github.com/fitstudio/backend/models"
	"github.com/fitstudio/backend/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedGroup(t *testing.T, db *gorm.DB, status models.GroupBuyStatus, minCount, memberCount int, deadline time.Time) *models.GroupBuy {
	t.Helper()
	group := models.GroupBuy{
		CourseID:    uuid.New(),
		OpenerID:    uuid.New(),
		Status:      status,
		MinCount:    minCount,
		MemberCount: memberCount,
		GroupPrice:  99.0,
		Deadline:    deadline,
	}
	require.NoError(t, db.Create(&group).Error)
	return &group
}

func TestGroupSettleJob(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewGroupBuyService(db, noopNotifier{})
	job := NewGroupSettleJob(db, svc)

	full := seedGroup(t, db, models.GroupBuyFull, 2, 2, time.Now().Add(time.Hour))
	expired := seedGroup(t, db, models.GroupBuyOpen, 3, 1, time.Now().Add(-time.Hour))
	live := seedGroup(t, db, models.GroupBuyOpen, 3, 1, time.Now().Add(time.Hour))

	job.Run()

	var stored models.GroupBuy
	require.NoError(t, db.First(&stored, "id = ?", full.ID).Error)
	assert.Equal(t, models.GroupBuySuccess, stored.Status)

	stored = models.GroupBuy{}
	require.NoError(t, db.First(&stored, "id = ?", expired.ID).Error)
	assert.Equal(t, models.GroupBuyFailed, stored.Status)

	stored = models.GroupBuy{}
	require.NoError(t, db.First(&stored, "id = ?", live.ID).Error)
	assert.Equal(t, models.GroupBuyOpen, stored.Status)
}
