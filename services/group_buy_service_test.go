package services

import (
	"errors"
	"testing"
	"time"

	"github.com/fitstudio/backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenGroupSeedsOpener(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupBuyService(db, noopNotifier{})
	opener := uuid.New()

	group, err := svc.Open(uuid.New(), opener, 3, 99.0, time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, models.GroupBuyOpen, group.Status)
	assert.Equal(t, 1, group.MemberCount)

	var members []models.GroupBuyMember
	require.NoError(t, db.Find(&members, "group_buy_id = ?", group.ID).Error)
	require.Len(t, members, 1)
	assert.Equal(t, opener, members[0].CustomerID)
}

func TestOpenGroupValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupBuyService(db, noopNotifier{})

	_, err := svc.Open(uuid.New(), uuid.New(), 1, 99.0, time.Now().Add(time.Hour))
	assert.Error(t, err)

	_, err = svc.Open(uuid.New(), uuid.New(), 2, 99.0, time.Now().Add(-time.Hour))
	assert.Error(t, err)
}

func TestJoinFillsGroup(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupBuyService(db, noopNotifier{})

	group, err := svc.Open(uuid.New(), uuid.New(), 2, 99.0, time.Now().Add(24*time.Hour))
	require.NoError(t, err)

	joined, err := svc.Join(group.ID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, models.GroupBuyFull, joined.Status)
	assert.Equal(t, 2, joined.MemberCount)

	// full group admits nobody else
	_, err = svc.Join(group.ID, uuid.New())
	assert.True(t, errors.Is(err, ErrGroupClosed))
}

func TestJoinRejectsDuplicateMember(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupBuyService(db, noopNotifier{})
	opener := uuid.New()

	group, err := svc.Open(uuid.New(), opener, 3, 99.0, time.Now().Add(24*time.Hour))
	require.NoError(t, err)

	_, err = svc.Join(group.ID, opener)
	assert.Error(t, err)
}

func TestSettleFullGroupSucceeds(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupBuyService(db, noopNotifier{})

	group, err := svc.Open(uuid.New(), uuid.New(), 2, 99.0, time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	group, err = svc.Join(group.ID, uuid.New())
	require.NoError(t, err)

	require.NoError(t, svc.Settle(group, time.Now()))
	assert.Equal(t, models.GroupBuySuccess, group.Status)

	var stored models.GroupBuy
	require.NoError(t, db.First(&stored, "id = ?", group.ID).Error)
	assert.Equal(t, models.GroupBuySuccess, stored.Status)
}

func TestSettleExpiredShortGroupFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupBuyService(db, noopNotifier{})

	group := models.GroupBuy{
		CourseID:    uuid.New(),
		OpenerID:    uuid.New(),
		Status:      models.GroupBuyOpen,
		MinCount:    3,
		MemberCount: 1,
		GroupPrice:  99.0,
		Deadline:    time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&group).Error)

	require.NoError(t, svc.Settle(&group, time.Now()))
	assert.Equal(t, models.GroupBuyFailed, group.Status)
}

func TestSettleLeavesLiveGroupAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupBuyService(db, noopNotifier{})

	group, err := svc.Open(uuid.New(), uuid.New(), 3, 99.0, time.Now().Add(24*time.Hour))
	require.NoError(t, err)

	require.NoError(t, svc.Settle(group, time.Now()))
	assert.Equal(t, models.GroupBuyOpen, group.Status)
}
