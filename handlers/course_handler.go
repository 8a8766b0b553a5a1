package handlers

import (
	"github.com/fitstudio/backend/database"
	"github.com/fitstudio/backend/models"
	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required,min=2"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category" validate:"omitempty,oneof=experience private"`
	Price       float64 `json:"price" validate:"min=0"`
	LessonCount int     `json:"lesson_count" validate:"required,min=1"`
	CoverURL    *string `json:"cover_url,omitempty"`
}

func CreateCourse(c *fiber.Ctx) error {
	coachID := currentUserID(c)

	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	category := req.Category
	if category == "" {
		category = models.SeatCategoryPrivate
	}

	course := models.Course{
		CoachID:     coachID,
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		Price:       req.Price,
		LessonCount: req.LessonCount,
		CoverURL:    req.CoverURL,
	}
	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

// ListCourses is public: browse a coach's offerings.
func ListCourses(c *fiber.Ctx) error {
	coachID := c.Query("coach_id")

	query := database.DB.Preload("Coach").Order("created_at desc")
	if coachID != "" {
		query = query.Where("coach_id = ?", coachID)
	}

	var courses []models.Course
	query.Find(&courses)

	return c.JSON(courses)
}

func GetCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := database.DB.Preload("Coach").First(&course, "id = ?", c.Params("courseId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	return c.JSON(course)
}
