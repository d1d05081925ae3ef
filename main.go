package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alishbasheba1-droid/SMS/app/config"
	"github.com/alishbasheba1-droid/SMS/app/engine"
	"github.com/alishbasheba1-droid/SMS/app/metrics"
	"github.com/alishbasheba1-droid/SMS/app/routes/attendance"
	"github.com/alishbasheba1-droid/SMS/app/routes/dashboard"
	"github.com/alishbasheba1-droid/SMS/app/routes/exams"
	"github.com/alishbasheba1-droid/SMS/app/routes/fees"
	"github.com/alishbasheba1-droid/SMS/app/routes/library"
	"github.com/alishbasheba1-droid/SMS/app/routes/students"
	"github.com/alishbasheba1-droid/SMS/app/routes/teachers"
	"github.com/alishbasheba1-droid/SMS/app/routes/timetable"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	db, err := cfg.OpenDB()
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := engine.CreateSchema(db); err != nil {
		log.Fatal("Failed to apply schema:", err)
	}

	eng := engine.New(db)

	app := fiber.New()

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(metrics.Middleware())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", metrics.Handler())

	// Routes
	dashboard.SetupDashboardRoutes(app, eng)
	students.SetupStudentsRoutes(app, eng)
	teachers.SetupTeachersRoutes(app, eng)
	attendance.SetupAttendanceRoutes(app, eng)
	fees.SetupFeesRoutes(app, eng)
	exams.SetupExamRoutes(app, eng)
	library.SetupLibraryRoutes(app, eng)
	timetable.SetupTimetableRoutes(app, eng)

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})

	// Shut down cleanly so the store closes after in-flight requests finish.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		_ = app.Shutdown()
	}()

	log.Println("Server starting on :" + cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
