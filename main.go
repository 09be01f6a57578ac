package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/DigiPoint-niger/scolatek-sub000/app/config"
	"github.com/DigiPoint-niger/scolatek-sub000/app/database"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/classes"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/dashboard"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/invoices"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/payments"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/receipts"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/schools"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/students"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/subscriptions"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/timetable"
	"github.com/DigiPoint-niger/scolatek-sub000/app/services"
)

// errorHandler returns every error as a JSON envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Dashboards bucket revenue by local calendar month, so the process
	// runs in West Africa Time.
	loc, err := time.LoadLocation("Africa/Niamey")
	if err != nil {
		log.Printf("Warning: Failed to load Africa/Niamey location, falling back to UTC+1: %v", err)
		time.Local = time.FixedZone("WAT", 1*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	config.LoadEnv()
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.DatabaseURL()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	services.StartScheduler(config.GetDB())

	app := fiber.New(fiber.Config{
		AppName:      "Scolatek",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGINS", "http://localhost:3000"),
		AllowCredentials: true,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app)
	schools.SetupSchoolsRoutes(app)
	students.SetupStudentsRoutes(app)
	classes.SetupClassesRoutes(app)
	payments.SetupPaymentsRoutes(app)
	invoices.SetupInvoicesRoutes(app)
	receipts.SetupReceiptsRoutes(app)
	subscriptions.SetupSubscriptionsRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	timetable.SetupTimetableRoutes(app)

	addr := ":" + config.GetEnv("PORT", "8080")
	log.Printf("Starting server on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal("Server failed:", err)
	}
}
