package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/fitstudio/backend/database"
	"github.com/fitstudio/backend/models"
	"github.com/fitstudio/backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReserveSeatRequest struct {
	CoachID     string  `json:"coach_id" validate:"required,uuid"`
	CourseID    *string `json:"course_id,omitempty" validate:"omitempty,uuid"`
	Day         int     `json:"day" validate:"required,min=20000101,max=29991231"`
	StartMinute int     `json:"start_minute" validate:"min=0,max=1439"`
	EndMinute   int     `json:"end_minute" validate:"required,min=1,max=1440"`
	Category    string  `json:"category" validate:"omitempty,oneof=experience private"`
	CouponID    *string `json:"coupon_id,omitempty" validate:"omitempty,uuid"`
}

// ReserveSeat creates a seat in confirm_required, optionally redeeming a
// coupon in the same transaction.
func ReserveSeat(c *fiber.Ctx) error {
	customerID := currentUserID(c)

	var req ReserveSeatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.StartMinute >= req.EndMinute {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Seat start must be before end"})
	}
	coachID, _ := uuid.Parse(req.CoachID)

	var trainee models.Trainee
	if err := database.DB.First(&trainee, "coach_id = ? AND customer_id = ?", coachID, customerID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You are not bound to this coach"})
	}

	category := req.Category
	if category == "" {
		category = models.SeatCategoryPrivate
	}

	now := time.Now()
	seat := models.Seat{
		CoachID:     coachID,
		CustomerID:  customerID,
		Day:         req.Day,
		StartMinute: req.StartMinute,
		EndMinute:   req.EndMinute,
		Category:    category,
		Status:      models.SeatConfirmRequired,
		IsValid:     true,
		Version:     1,
		ReservedAt:  &now,
	}
	if req.CourseID != nil {
		courseID, _ := uuid.Parse(*req.CourseID)
		seat.CourseID = &courseID
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var clash int64
		tx.Model(&models.Seat{}).
			Where("coach_id = ? AND customer_id = ? AND day = ? AND start_minute = ? AND is_valid = ?",
				coachID, customerID, req.Day, req.StartMinute, true).
			Count(&clash)
		if clash > 0 {
			return errors.New("a seat already exists at this time")
		}

		if req.CouponID != nil {
			res := tx.Model(&models.Coupon{}).
				Where("id = ? AND customer_id = ? AND status = ? AND valid_until >= ?",
					*req.CouponID, customerID, models.CouponClaimed, now).
				Updates(map[string]interface{}{"status": models.CouponRedeemed, "redeemed_at": now})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errors.New("coupon is not redeemable")
			}
		}

		return tx.Create(&seat).Error
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	scheduleCache.Delete(c.Context(), scheduleKey(coachID, req.Day))

	return c.Status(fiber.StatusCreated).JSON(seat)
}

type TransformSeatRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed attended confirm_expired"`
}

// TransformSeat moves a seat through the status machine. Coach only.
func TransformSeat(c *fiber.Ctx) error {
	coachID := currentUserID(c)
	seatID := c.Params("seatId")

	var req TransformSeatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var seat models.Seat
	if err := database.DB.First(&seat, "id = ?", seatID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Seat not found"})
	}
	if seat.CoachID != coachID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the coach for this seat"})
	}

	if err := seatService.Transform(&seat, models.SeatStatus(req.Status)); err != nil {
		var invalid *services.InvalidTransitionError
		if errors.As(err, &invalid) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": invalid.Error()})
		}
		if errors.Is(err, services.ErrSeatConflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Seat was modified concurrently, please retry"})
		}
		if errors.Is(err, services.ErrSeatCancelled) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Seat has been cancelled"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update seat"})
	}

	scheduleCache.Delete(c.Context(), scheduleKey(seat.CoachID, seat.Day))

	return c.JSON(seat)
}

// CancelSeat invalidates a seat. Either party may cancel their own seat.
func CancelSeat(c *fiber.Ctx) error {
	userID := currentUserID(c)
	seatID := c.Params("seatId")

	var seat models.Seat
	if err := database.DB.First(&seat, "id = ?", seatID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Seat not found"})
	}
	if seat.CoachID != userID && seat.CustomerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your seat"})
	}

	if err := seatService.Cancel(&seat); err != nil {
		if errors.Is(err, services.ErrSeatCancelled) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Seat has already been cancelled"})
		}
		if errors.Is(err, services.ErrSeatConflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Seat was modified concurrently, please retry"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel seat"})
	}

	scheduleCache.Delete(c.Context(), scheduleKey(seat.CoachID, seat.Day))

	return c.JSON(fiber.Map{"message": "Seat cancelled", "seat": seat})
}

// GetMySeats lists the calling customer's valid seats, newest day first.
func GetMySeats(c *fiber.Ctx) error {
	customerID := currentUserID(c)

	var seats []models.Seat
	database.DB.
		Preload("Coach").
		Where("customer_id = ? AND is_valid = ?", customerID, true).
		Order("day desc, start_minute asc").
		Find(&seats)

	return c.JSON(seats)
}

// GetCoachSchedule lists a coach's valid seats for one day, cached.
func GetCoachSchedule(c *fiber.Ctx) error {
	coachID := currentUserID(c)
	day, err := c.ParamsInt("day")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid day"})
	}

	var seats []models.Seat
	err = scheduleCache.Fetch(c.Context(), scheduleKey(coachID, day), &seats, func() (interface{}, error) {
		var fresh []models.Seat
		err := database.DB.
			Preload("Customer").
			Where("coach_id = ? AND day = ? AND is_valid = ?", coachID, day, true).
			Order("start_minute asc").
			Find(&fresh).Error
		return fresh, err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load schedule"})
	}

	return c.JSON(seats)
}

func scheduleKey(coachID uuid.UUID, day int) string {
	return fmt.Sprintf("schedule:%s:%d", coachID, day)
}
