package main

import (
	"edumart/config"
	paymentController "edumart/controllers/payment"
	"edumart/database"
	authRoutes "edumart/routers/authRoutes"
	categoryRoutes "edumart/routers/categoryRoutes"
	chapterRoutes "edumart/routers/chapterRoutes"
	courseRoutes "edumart/routers/courseRoutes"
	creatorRoutes "edumart/routers/creatorRoutes"
	earningRoutes "edumart/routers/earningRoutes"
	enrollmentRoutes "edumart/routers/enrollmentRoutes"
	linkRoutes "edumart/routers/linkRoutes"
	paymentRoutes "edumart/routers/paymentRoutes"
	userRoutes "edumart/routers/userRoutes"
	videoRoutes "edumart/routers/videoRoutes"
	paymentService "edumart/services/payment"
	"edumart/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.LoadConfig()
	database.ConnectDb(cfg)

	db := database.Database.Db
	gateway := paymentService.NewGateway(cfg, db)
	engine := paymentService.NewEngine(db, nil,
		paymentService.DuplicateEnrollmentPolicy(cfg.DuplicateEnrollmentPolicy))
	paymentController.Setup(gateway, engine)

	utils.InitializePaymentScheduler(engine, cfg.PendingPaymentTTLDays)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,Chapa-Signature,X-Chapa-Signature",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded assets from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	creatorRoutes.SetupCreatorRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	chapterRoutes.SetupChapterRoutes(app)
	videoRoutes.SetupVideoRoutes(app)
	linkRoutes.SetupLinkRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	earningRoutes.SetupEarningRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
