package creatorRoutes

import (
	creatorController "edumart/controllers/creator"
	"edumart/middleware"
	creatorValidator "edumart/validators/creator"

	"github.com/gofiber/fiber/v2"
)

func SetupCreatorRoutes(app *fiber.App) {
	creatorGroup := app.Group("/creators")

	creatorGroup.Post("/register",
		middleware.JWTMiddleware,
		middleware.CheckCreatorMiddleware,
		creatorValidator.Register(),
		creatorController.RegisterCreator,
	)
	creatorGroup.Get("/user/:userId", creatorController.GetCreatorByUserId)
	creatorGroup.Get("/:id", creatorController.GetCreatorById)
	creatorGroup.Put("/:id", middleware.JWTMiddleware, creatorController.UpdateCreator)
	creatorGroup.Put("/:id/profile-picture", middleware.JWTMiddleware, creatorController.UpdateProfilePicture)
}
