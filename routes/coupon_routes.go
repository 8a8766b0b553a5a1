package routes

import (
	"github.com/fitstudio/backend/handlers"
	"github.com/fitstudio/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func CouponRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	coupons := api.Group("/coupons", middleware.Protected())
	coupons.Get("/me", handlers.GetMyCoupons)
	coupons.Post("/:templateId/claim", handlers.ClaimCoupon)

	api.Post("/coach/coupon-templates", middleware.Protected(), middleware.CoachRequired(), handlers.CreateCouponTemplate)
}
