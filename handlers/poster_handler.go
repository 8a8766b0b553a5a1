package handlers

import (
	"fmt"
	"log"

	"github.com/fitstudio/backend/database"
	"github.com/fitstudio/backend/models"
	"github.com/gofiber/fiber/v2"
)

// GeneratePoster renders and uploads a share poster for one of the
// calling coach's courses, returning the poster URL.
func GeneratePoster(c *fiber.Ctx) error {
	coachID := currentUserID(c)
	courseID := c.Params("courseId")

	var course models.Course
	if err := database.DB.Preload("Coach").First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	if course.CoachID != coachID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your course"})
	}

	shareURL := fmt.Sprintf("https://m.fitstudio.app/course/%s", course.ID)
	posterURL, err := posterService.GenerateCoursePoster(&course, shareURL)
	if err != nil {
		log.Printf("🔥 Poster generation failed for course %s: %v", course.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate poster"})
	}

	return c.JSON(fiber.Map{"poster_url": posterURL})
}
