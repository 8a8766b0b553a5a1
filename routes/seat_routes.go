package routes

import (
	"github.com/fitstudio/backend/handlers"
	"github.com/fitstudio/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func SeatRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	seats := api.Group("/seats", middleware.Protected())
	seats.Get("/me", handlers.GetMySeats)
	seats.Post("", handlers.ReserveSeat)
	seats.Post("/:seatId/cancel", handlers.CancelSeat)

	coachSeats := api.Group("/coach/seats", middleware.Protected(), middleware.CoachRequired())
	coachSeats.Post("/:seatId/transform", handlers.TransformSeat)
	coachSeats.Get("/schedule/:day", handlers.GetCoachSchedule)

	triggers := api.Group("/coach/triggers", middleware.Protected(), middleware.CoachRequired())
	triggers.Get("", handlers.GetMyTriggers)
	triggers.Post("", handlers.CreateTrigger)
	triggers.Delete("/:triggerId", handlers.DeleteTrigger)
}
