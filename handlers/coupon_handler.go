package handlers

import (
	"errors"
	"time"

	"github.com/fitstudio/backend/database"
	"github.com/fitstudio/backend/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateCouponTemplateRequest struct {
	Title     string  `json:"title" validate:"required,min=2"`
	Discount  float64 `json:"discount" validate:"required,gt=0"`
	ValidDays int     `json:"valid_days" validate:"required,min=1"`
	Stock     int     `json:"stock" validate:"required,min=1"`
}

func CreateCouponTemplate(c *fiber.Ctx) error {
	coachID := currentUserID(c)

	var req CreateCouponTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	template := models.CouponTemplate{
		CoachID:   coachID,
		Title:     req.Title,
		Discount:  req.Discount,
		ValidDays: req.ValidDays,
		Stock:     req.Stock,
	}
	if err := database.DB.Create(&template).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create coupon template"})
	}

	return c.Status(fiber.StatusCreated).JSON(template)
}

// ClaimCoupon issues one coupon from a template to the calling customer.
// Stock is decremented with a guarded update so it can never go negative.
func ClaimCoupon(c *fiber.Ctx) error {
	customerID := currentUserID(c)
	templateID := c.Params("templateId")

	var coupon models.Coupon
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var template models.CouponTemplate
		if err := tx.First(&template, "id = ?", templateID).Error; err != nil {
			return errors.New("coupon template not found")
		}

		var dup int64
		tx.Model(&models.Coupon{}).
			Where("template_id = ? AND customer_id = ?", templateID, customerID).
			Count(&dup)
		if dup > 0 {
			return errors.New("you already claimed this coupon")
		}

		res := tx.Model(&models.CouponTemplate{}).
			Where("id = ? AND stock > 0", templateID).
			Update("stock", gorm.Expr("stock - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("coupon is out of stock")
		}

		coupon = models.Coupon{
			TemplateID: template.ID,
			CustomerID: customerID,
			Status:     models.CouponClaimed,
			ValidUntil: time.Now().AddDate(0, 0, template.ValidDays),
		}
		return tx.Create(&coupon).Error
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(coupon)
}

func GetMyCoupons(c *fiber.Ctx) error {
	customerID := currentUserID(c)

	var coupons []models.Coupon
	database.DB.
		Preload("Template").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&coupons)

	return c.JSON(coupons)
}
