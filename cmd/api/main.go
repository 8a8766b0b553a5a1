package main

import (
	"log"
	"time"

	"github.com/fitstudio/backend/cache"
	"github.com/fitstudio/backend/database"
	"github.com/fitstudio/backend/handlers"
	"github.com/fitstudio/backend/jobs"
	"github.com/fitstudio/backend/notifications"
	"github.com/fitstudio/backend/routes"
	"github.com/fitstudio/backend/services"
	"github.com/fitstudio/backend/websocket"
	"github.com/fitstudio/backend/wechat"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()

	rdb := database.NewRedisClient()
	scheduleCache := cache.New(rdb, "schedule", 30*time.Second)
	tokenCache := cache.New(rdb, "wechat", 100*time.Minute)

	wx := wechat.NewClient(tokenCache)
	publisher := notifications.NewPublisher()
	go notifications.NewConsumer(database.DB, wx).Start()

	ledger := services.NewLessonLedger()
	seatService := services.NewSeatService(database.DB, ledger, publisher)
	groupService := services.NewGroupBuyService(database.DB, publisher)
	posterService := services.NewPosterService(database.DB)
	reportService := services.NewReportService(database.DB, publisher)

	handlers.Init(seatService, groupService, posterService, wx, scheduleCache)

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	c.AddJob("* * * * *", jobs.NewSeatAgingJob(database.DB, seatService))
	c.AddJob("0 7 * * *", jobs.NewSeatMaterializeJob(database.DB))
	c.AddJob("0 * * * *", jobs.NewCouponExpiryJob(database.DB))
	c.AddJob("*/5 * * * *", jobs.NewGroupSettleJob(database.DB, groupService))
	c.AddJob("0 8 1 * *", jobs.NewMonthlyReportJob(reportService))
	go c.Start()
	log.Println("✅ Cron jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Fit Studio",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Shanghai",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Fit Studio API",
		})
	})

	routes.AuthRoutes(app)
	routes.SeatRoutes(app)
	routes.TraineeRoutes(app)
	routes.CourseRoutes(app)
	routes.CouponRoutes(app)
	routes.GroupBuyRoutes(app)
	routes.CheckInRoutes(app)
	routes.MediaRoutes(app)

	go websocket.RunHub()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	err := app.Listen(":8080")
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
