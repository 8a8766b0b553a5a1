package services

import (
	"errors"
	"time"

	"github.com/fitstudio/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupNotifier is told when a group settles so members can be messaged.
type GroupNotifier interface {
	GroupSettled(group models.GroupBuy)
}

// GroupBuyService drives the open -> full -> success / failed lifecycle
// of group promotions. Join uses the same compare-and-swap pattern as
// seat transitions, keyed on member_count.
type GroupBuyService struct {
	db       *gorm.DB
	notifier GroupNotifier
}

func NewGroupBuyService(db *gorm.DB, notifier GroupNotifier) *GroupBuyService {
	return &GroupBuyService{db: db, notifier: notifier}
}

// Open creates a group on a course with the opener as its first member.
func (s *GroupBuyService) Open(courseID, openerID uuid.UUID, minCount int, price float64, deadline time.Time) (*models.GroupBuy, error) {
	if minCount < 2 {
		return nil, errors.New("group min count must be at least 2")
	}
	if deadline.Before(time.Now()) {
		return nil, errors.New("group deadline must be in the future")
	}

	group := models.GroupBuy{
		CourseID:    courseID,
		OpenerID:    openerID,
		Status:      models.GroupBuyOpen,
		MinCount:    minCount,
		MemberCount: 1,
		GroupPrice:  price,
		Deadline:    deadline,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		member := models.GroupBuyMember{GroupBuyID: group.ID, CustomerID: openerID}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Join adds a customer to an open group. Reaching MinCount flips the
// group to full; the deadline job settles it to success afterwards.
func (s *GroupBuyService) Join(groupID, customerID uuid.UUID) (*models.GroupBuy, error) {
	var group models.GroupBuy
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&group, "id = ?", groupID).Error; err != nil {
			return err
		}
		if group.Status != models.GroupBuyOpen {
			return ErrGroupClosed
		}
		if time.Now().After(group.Deadline) {
			return ErrGroupClosed
		}

		var dup int64
		tx.Model(&models.GroupBuyMember{}).
			Where("group_buy_id = ? AND customer_id = ?", groupID, customerID).
			Count(&dup)
		if dup > 0 {
			return errors.New("customer already joined this group")
		}

		newCount := group.MemberCount + 1
		newStatus := group.Status
		if newCount >= group.MinCount {
			newStatus = models.GroupBuyFull
		}

		res := tx.Model(&models.GroupBuy{}).
			Where("id = ? AND member_count = ? AND status = ?", groupID, group.MemberCount, models.GroupBuyOpen).
			Updates(map[string]interface{}{"member_count": newCount, "status": newStatus})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrGroupClosed
		}
		group.MemberCount = newCount
		group.Status = newStatus

		member := models.GroupBuyMember{GroupBuyID: groupID, CustomerID: customerID}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Settle resolves a group that is full or past its deadline: full groups
// (and open ones that reached MinCount) become success, the rest failed.
// Groups still open before their deadline are left alone.
func (s *GroupBuyService) Settle(group *models.GroupBuy, now time.Time) error {
	var target models.GroupBuyStatus
	switch {
	case group.Status == models.GroupBuyFull:
		target = models.GroupBuySuccess
	case group.Status == models.GroupBuyOpen && now.After(group.Deadline):
		if group.MemberCount >= group.MinCount {
			target = models.GroupBuySuccess
		} else {
			target = models.GroupBuyFailed
		}
	default:
		return nil
	}

	res := s.db.Model(&models.GroupBuy{}).
		Where("id = ? AND status = ?", group.ID, group.Status).
		Update("status", target)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// settled by a parallel run already
		return nil
	}
	group.Status = target

	if s.notifier != nil {
		go s.notifier.GroupSettled(*group)
	}
	return nil
}
