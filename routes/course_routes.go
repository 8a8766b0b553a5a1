package routes

import (
	"github.com/fitstudio/backend/handlers"
	"github.com/fitstudio/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func CourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/courses", handlers.ListCourses)
	api.Get("/courses/:courseId", handlers.GetCourse)

	coachCourses := api.Group("/coach/courses", middleware.Protected(), middleware.CoachRequired())
	coachCourses.Post("", handlers.CreateCourse)
	coachCourses.Post("/:courseId/poster", handlers.GeneratePoster)
}
