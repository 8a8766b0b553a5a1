package handlers

import (
	"fmt"
	"time"

	"github.com/fitstudio/backend/database"
	"github.com/fitstudio/backend/models"
	"github.com/fitstudio/backend/utils"
	"github.com/fitstudio/backend/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CheckInRequest struct {
	CoachID  string  `json:"coach_id" validate:"required,uuid"`
	Note     *string `json:"note,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

// CreateCheckIn records today's check-in, once per day per coach, and
// pushes it to the coach's live dashboard.
func CreateCheckIn(c *fiber.Ctx) error {
	customerID := currentUserID(c)

	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	coachID, _ := uuid.Parse(req.CoachID)
	today := utils.DayInt(time.Now())

	var dup int64
	database.DB.Model(&models.CheckIn{}).
		Where("customer_id = ? AND coach_id = ? AND day = ?", customerID, coachID, today).
		Count(&dup)
	if dup > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Already checked in today"})
	}

	checkIn := models.CheckIn{
		CustomerID: customerID,
		CoachID:    coachID,
		Day:        today,
		Note:       req.Note,
		PhotoURL:   req.PhotoURL,
	}
	if err := database.DB.Create(&checkIn).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check in"})
	}

	database.DB.Preload("Customer").First(&checkIn, "id = ?", checkIn.ID)
	websocket.Push(&checkIn)

	return c.Status(fiber.StatusCreated).JSON(checkIn)
}

func GetMyCheckIns(c *fiber.Ctx) error {
	customerID := currentUserID(c)

	var checkIns []models.CheckIn
	database.DB.
		Where("customer_id = ?", customerID).
		Order("day desc").
		Limit(90).
		Find(&checkIns)

	return c.JSON(checkIns)
}

// CheckInQRCode returns a PNG QR code encoding the studio check-in URL
// for the calling coach, for printing on studio posters.
func CheckInQRCode(c *fiber.Ctx) error {
	coachID := currentUserID(c)

	content := fmt.Sprintf("https://m.fitstudio.app/checkin?coach=%s", coachID)
	png, err := utils.GenerateQRCode(content, 512)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate QR code"})
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
