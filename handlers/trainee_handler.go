package handlers

import (
	"errors"

	"github.com/fitstudio/backend/database"
	"github.com/fitstudio/backend/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BindTraineeRequest struct {
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	TotalLessons  int    `json:"total_lessons" validate:"min=0"`
}

// BindTrainee attaches a customer to the calling coach with a contracted
// lesson total. Rebinding an unbound trainee reactivates the old row so
// its ledger history is kept.
func BindTrainee(c *fiber.Ctx) error {
	coachID := currentUserID(c)

	var req BindTraineeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var customer models.User
	if err := database.DB.First(&customer, "email = ?", req.CustomerEmail).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	var trainee models.Trainee
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&trainee, "coach_id = ? AND customer_id = ?", coachID, customer.ID).Error
		if err == nil {
			if trainee.BindStatus == models.TraineeBound {
				return errors.New("customer is already bound to you")
			}
			trainee.BindStatus = models.TraineeBound
			trainee.TotalLessons += req.TotalLessons
			return tx.Save(&trainee).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		trainee = models.Trainee{
			CoachID:      coachID,
			CustomerID:   customer.ID,
			TotalLessons: req.TotalLessons,
			BindStatus:   models.TraineeBound,
		}
		return tx.Create(&trainee).Error
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(trainee)
}

// GetMyTrainees lists the calling coach's bound trainees with balances.
func GetMyTrainees(c *fiber.Ctx) error {
	coachID := currentUserID(c)

	var trainees []models.Trainee
	database.DB.
		Preload("Customer").
		Where("coach_id = ? AND bind_status = ?", coachID, models.TraineeBound).
		Find(&trainees)

	return c.JSON(trainees)
}

type TopUpRequest struct {
	Lessons int `json:"lessons" validate:"required,min=1"`
}

// TopUpTrainee adds contracted lessons to an existing trainee.
func TopUpTrainee(c *fiber.Ctx) error {
	coachID := currentUserID(c)
	traineeID := c.Params("traineeId")

	var req TopUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res := database.DB.Model(&models.Trainee{}).
		Where("id = ? AND coach_id = ?", traineeID, coachID).
		Update("total_lessons", gorm.Expr("total_lessons + ?", req.Lessons))
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to top up"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainee not found"})
	}

	return c.JSON(fiber.Map{"message": "Lessons added"})
}

// UnbindTrainee marks the relationship unbound without deleting history.
func UnbindTrainee(c *fiber.Ctx) error {
	coachID := currentUserID(c)
	traineeID := c.Params("traineeId")

	res := database.DB.Model(&models.Trainee{}).
		Where("id = ? AND coach_id = ?", traineeID, coachID).
		Update("bind_status", models.TraineeUnbound)
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to unbind"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainee not found"})
	}

	return c.JSON(fiber.Map{"message": "Trainee unbound"})
}

// GetMyLessonRecords lists the audit trail for the calling customer.
func GetMyLessonRecords(c *fiber.Ctx) error {
	customerID := currentUserID(c)

	var records []models.LessonRecord
	database.DB.
		Where("customer_id = ?", customerID).
		Order("executed_at desc").
		Find(&records)

	return c.JSON(records)
}
