package linkRoutes

import (
	linkController "edumart/controllers/link"
	"edumart/middleware"
	"edumart/models"

	"github.com/gofiber/fiber/v2"
)

func SetupLinkRoutes(app *fiber.App) {
	linkGroup := app.Group("/links")

	linkGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator, models.RoleAdmin), linkController.CreateLink)
	linkGroup.Get("/", linkController.GetAllLinks)
	linkGroup.Get("/chapter/:chapterId", linkController.GetLinksByChapterId)
	linkGroup.Get("/:id", linkController.GetLinkById)
	linkGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator, models.RoleAdmin), linkController.UpdateLink)
	linkGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator, models.RoleAdmin), linkController.DeleteLink)
}
