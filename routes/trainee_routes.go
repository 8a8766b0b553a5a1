package routes

import (
	"github.com/fitstudio/backend/handlers"
	"github.com/fitstudio/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func TraineeRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	trainees := api.Group("/coach/trainees", middleware.Protected(), middleware.CoachRequired())
	trainees.Get("", handlers.GetMyTrainees)
	trainees.Post("/bind", handlers.BindTrainee)
	trainees.Post("/:traineeId/topup", handlers.TopUpTrainee)
	trainees.Post("/:traineeId/unbind", handlers.UnbindTrainee)

	api.Get("/lessons/records", middleware.Protected(), handlers.GetMyLessonRecords)
}
