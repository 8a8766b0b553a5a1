package services

import (
	"time"

	"github.com/fitstudio/backend/models"
	"gorm.io/gorm"
)

// SeatNotifier receives seat lifecycle events. Implementations must be
// fire-and-forget: a failed or slow notification never blocks or fails
// the transition that produced it.
type SeatNotifier interface {
	SeatConfirmed(seat models.Seat)
	SeatCancelled(seat models.Seat)
}

type transition struct {
	from models.SeatStatus
	to   models.SeatStatus
}

type transitionEffect struct {
	stampConfirmed bool // set confirmed_at
	debitLesson    bool // consume one lesson credit
	notifyConfirm  bool // tell the customer the reservation went through
}

// transitions is the closed table of legal status moves. Anything not
// listed here is rejected with InvalidTransitionError.
var transitions = map[transition]transitionEffect{
	{models.SeatConfirmRequired, models.SeatConfirmed}:      {stampConfirmed: true, notifyConfirm: true},
	{models.SeatConfirmed, models.SeatAttended}:             {stampConfirmed: true, debitLesson: true},
	{models.SeatConfirmExpired, models.SeatAttended}:        {stampConfirmed: true, debitLesson: true},
	{models.SeatConfirmRequired, models.SeatAttended}:       {stampConfirmed: true, debitLesson: true},
	{models.SeatConfirmRequired, models.SeatConfirmExpired}: {},
}

// SeatService owns every mutation of a seat after creation. Writes go
// through a compare-and-swap on the version column, so of two concurrent
// calls on the same seat exactly one commits and the other gets
// ErrSeatConflict instead of silently overwriting.
type SeatService struct {
	db       *gorm.DB
	ledger   *LessonLedger
	notifier SeatNotifier
}

func NewSeatService(db *gorm.DB, ledger *LessonLedger, notifier SeatNotifier) *SeatService {
	return &SeatService{db: db, ledger: ledger, notifier: notifier}
}

// Transform moves seat to target according to the transition table. The
// status write, timestamps and any ledger debit commit as one
// transaction; the confirm notification fires after the commit.
func (s *SeatService) Transform(seat *models.Seat, target models.SeatStatus) error {
	if !seat.IsValid {
		return ErrSeatCancelled
	}
	effect, ok := transitions[transition{seat.Status, target}]
	if !ok {
		return &InvalidTransitionError{From: seat.Status, To: target}
	}

	now := time.Now()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":  target,
			"version": seat.Version + 1,
		}
		if effect.stampConfirmed {
			updates["confirmed_at"] = now
		}

		res := tx.Model(&models.Seat{}).
			Where("id = ? AND version = ? AND is_valid = ?", seat.ID, seat.Version, true).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSeatConflict
		}

		if effect.debitLesson {
			return s.ledger.Debit(tx, seat, now)
		}
		return nil
	})
	if err != nil {
		return err
	}

	seat.Status = target
	seat.Version++
	if effect.stampConfirmed {
		seat.ConfirmedAt = &now
	}

	if effect.notifyConfirm && s.notifier != nil {
		go s.notifier.SeatConfirmed(*seat)
	}
	return nil
}

// Cancel clears the seat's validity flag without touching its status.
// Cancelling an attended seat reverses its ledger debit so the trainee's
// balance is restored.
func (s *SeatService) Cancel(seat *models.Seat) error {
	if !seat.IsValid {
		return ErrSeatCancelled
	}

	now := time.Now()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Seat{}).
			Where("id = ? AND version = ? AND is_valid = ?", seat.ID, seat.Version, true).
			Updates(map[string]interface{}{
				"is_valid":    false,
				"version":     seat.Version + 1,
				"canceled_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSeatConflict
		}

		if seat.Status == models.SeatAttended {
			return s.ledger.Credit(tx, seat, now)
		}
		return nil
	})
	if err != nil {
		return err
	}

	seat.IsValid = false
	seat.Version++
	seat.CanceledAt = &now

	if s.notifier != nil {
		go s.notifier.SeatCancelled(*seat)
	}
	return nil
}
