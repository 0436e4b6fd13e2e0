package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/anaepietro/wedding-backend/app/controllers"
	"github.com/anaepietro/wedding-backend/app/repository"
	"github.com/anaepietro/wedding-backend/internal/pkg/auditlog"
	"github.com/anaepietro/wedding-backend/internal/pkg/cache"
	"github.com/anaepietro/wedding-backend/internal/pkg/database"
	"github.com/anaepietro/wedding-backend/internal/pkg/env"
	"github.com/anaepietro/wedding-backend/internal/pkg/mail"
	"github.com/anaepietro/wedding-backend/internal/pkg/pagbank"
	"github.com/anaepietro/wedding-backend/internal/pkg/payments"
	"github.com/anaepietro/wedding-backend/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()

	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}
	cacheStore := cache.SetupCache()

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/wedding to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		Views: html.New(basePath+"views", ".html"),
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	app.Static("/static", basePath+"static")

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "admin"),
		},
	}), monitor.New())

	// service wiring; handlers get explicit handles, no ambient globals
	audit := auditlog.New(env.GetEnv("PAYMENT_AUDIT_LOG", "payment_audit.log"))
	mailer := mail.NewSenderFromEnv()
	provider := pagbank.NewClientFromEnv()
	paymentSvc := payments.NewService(
		payments.NewRepository(db),
		provider,
		mailer,
		audit,
		env.GetEnv("PUBLIC_DOMAIN", "http://localhost:4000"),
	)

	repos := repository.NewFactory(db).GetRepositories()

	router.InstallRouter(app,
		router.NewHttpRouter(
			controllers.NewMainController(),
			controllers.NewPaymentController(paymentSvc),
			controllers.NewCommentController(paymentSvc, repos.Comment, cacheStore),
			controllers.NewGuestController(repos.Guest, env.GetEnv("ADMIN_TOKEN", "")),
		),
		router.NewApiRouter(),
	)

	return app
}
