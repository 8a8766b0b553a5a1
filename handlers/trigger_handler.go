package handlers

import (
	"github.com/fitstudio/backend/database"
	"github.com/fitstudio/backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateTriggerRequest struct {
	CustomerID  string `json:"customer_id" validate:"required,uuid"`
	Weekday     int    `json:"weekday" validate:"min=0,max=6"`
	StartMinute int    `json:"start_minute" validate:"min=0,max=1439"`
	EndMinute   int    `json:"end_minute" validate:"required,min=1,max=1440"`
}

// CreateTrigger sets up a weekly recurring reservation for a trainee.
func CreateTrigger(c *fiber.Ctx) error {
	coachID := currentUserID(c)

	var req CreateTriggerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.StartMinute >= req.EndMinute {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Trigger start must be before end"})
	}
	customerID, _ := uuid.Parse(req.CustomerID)

	var trainee models.Trainee
	if err := database.DB.First(&trainee, "coach_id = ? AND customer_id = ?", coachID, customerID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Customer is not bound to you"})
	}

	trigger := models.SeatTrigger{
		CoachID:     coachID,
		CustomerID:  customerID,
		Weekday:     req.Weekday,
		StartMinute: req.StartMinute,
		EndMinute:   req.EndMinute,
	}
	if err := database.DB.Create(&trigger).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create trigger"})
	}

	return c.Status(fiber.StatusCreated).JSON(trigger)
}

func GetMyTriggers(c *fiber.Ctx) error {
	coachID := currentUserID(c)

	var triggers []models.SeatTrigger
	database.DB.
		Where("coach_id = ?", coachID).
		Order("weekday asc, start_minute asc").
		Find(&triggers)

	return c.JSON(triggers)
}

func DeleteTrigger(c *fiber.Ctx) error {
	coachID := currentUserID(c)
	triggerID := c.Params("triggerId")

	res := database.DB.Delete(&models.SeatTrigger{}, "id = ? AND coach_id = ?", triggerID, coachID)
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete trigger"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trigger not found"})
	}

	return c.JSON(fiber.Map{"message": "Trigger deleted"})
}
