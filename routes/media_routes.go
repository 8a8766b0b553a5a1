package routes

import (
	"github.com/fitstudio/backend/handlers"
	"github.com/fitstudio/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func MediaRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/videos", handlers.ListVideos)

	coachVideos := api.Group("/coach/videos", middleware.Protected(), middleware.CoachRequired())
	coachVideos.Post("", handlers.CreateVideo)
	coachVideos.Delete("/:videoId", handlers.DeleteVideo)

	api.Get("/uploads/signature", middleware.Protected(), handlers.GenerateUploadSignature)
}
