package routes

import (
	"github.com/fitstudio/backend/handlers"
	"github.com/fitstudio/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func GroupBuyRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	groups := api.Group("/groups")
	groups.Get("/:groupId", handlers.GetGroup)
	groups.Post("", middleware.Protected(), handlers.OpenGroup)
	groups.Post("/:groupId/join", middleware.Protected(), handlers.JoinGroup)
}
