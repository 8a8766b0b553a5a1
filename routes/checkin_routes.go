package routes

import (
	"github.com/fitstudio/backend/handlers"
	"github.com/fitstudio/backend/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func CheckInRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	checkins := api.Group("/checkins", middleware.Protected())
	checkins.Get("/me", handlers.GetMyCheckIns)
	checkins.Post("", handlers.CreateCheckIn)

	api.Get("/coach/checkin-qr", middleware.Protected(), middleware.CoachRequired(), handlers.CheckInQRCode)

	api.Use("/ws/dashboard", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws/dashboard", websocket.New(handlers.ServeDashboard))
}
