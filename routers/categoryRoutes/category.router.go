package categoryRoutes

import (
	categoryController "edumart/controllers/category"
	"edumart/middleware"
	"edumart/models"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/categories")

	categoryGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), categoryController.CreateCategory)
	categoryGroup.Get("/", categoryController.GetAllCategories)
	categoryGroup.Get("/:id", categoryController.GetCategoryById)
	categoryGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), categoryController.UpdateCategory)
	categoryGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), categoryController.DeleteCategory)
}
