package handlers

import (
	"errors"
	"time"

	"github.com/fitstudio/backend/database"
	"github.com/fitstudio/backend/models"
	"github.com/fitstudio/backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OpenGroupRequest struct {
	CourseID   string  `json:"course_id" validate:"required,uuid"`
	MinCount   int     `json:"min_count" validate:"required,min=2"`
	GroupPrice float64 `json:"group_price" validate:"required,gt=0"`
	Deadline   string  `json:"deadline" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

func OpenGroup(c *fiber.Ctx) error {
	customerID := currentUserID(c)

	var req OpenGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	courseID, _ := uuid.Parse(req.CourseID)
	deadline, _ := time.Parse(time.RFC3339, req.Deadline)

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	group, err := groupService.Open(courseID, customerID, req.MinCount, req.GroupPrice, deadline)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

func JoinGroup(c *fiber.Ctx) error {
	customerID := currentUserID(c)
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid group id"})
	}

	group, err := groupService.Join(groupID, customerID)
	if err != nil {
		if errors.Is(err, services.ErrGroupClosed) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Group is no longer open"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(group)
}

func GetGroup(c *fiber.Ctx) error {
	var group models.GroupBuy
	err := database.DB.
		Preload("Course").
		Preload("Members.Customer").
		First(&group, "id = ?", c.Params("groupId")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	}

	return c.JSON(group)
}
