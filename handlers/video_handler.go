package handlers

import (
	"github.com/fitstudio/backend/database"
	"github.com/fitstudio/backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateVideoRequest struct {
	CourseID *string `json:"course_id,omitempty" validate:"omitempty,uuid"`
	Title    string  `json:"title" validate:"required,min=2"`
	URL      string  `json:"url" validate:"required,url"`
	CoverURL *string `json:"cover_url,omitempty" validate:"omitempty,url"`
	Duration int     `json:"duration" validate:"min=0"`
}

// CreateVideo registers an uploaded lesson video (the file itself goes
// to Cloudinary through the signed upload flow).
func CreateVideo(c *fiber.Ctx) error {
	coachID := currentUserID(c)

	var req CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	video := models.Video{
		CoachID:  coachID,
		Title:    req.Title,
		URL:      req.URL,
		CoverURL: req.CoverURL,
		Duration: req.Duration,
	}
	if req.CourseID != nil {
		courseID, _ := uuid.Parse(*req.CourseID)
		video.CourseID = &courseID
	}

	if err := database.DB.Create(&video).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create video"})
	}

	return c.Status(fiber.StatusCreated).JSON(video)
}

func ListVideos(c *fiber.Ctx) error {
	query := database.DB.Order("created_at desc")
	if coachID := c.Query("coach_id"); coachID != "" {
		query = query.Where("coach_id = ?", coachID)
	}
	if courseID := c.Query("course_id"); courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}

	var videos []models.Video
	query.Find(&videos)

	return c.JSON(videos)
}

func DeleteVideo(c *fiber.Ctx) error {
	coachID := currentUserID(c)

	res := database.DB.Delete(&models.Video{}, "id = ? AND coach_id = ?", c.Params("videoId"), coachID)
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete video"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Video not found"})
	}

	return c.JSON(fiber.Map{"message": "Video deleted"})
}
