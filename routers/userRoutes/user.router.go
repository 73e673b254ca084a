package userRoutes

import (
	userController "edumart/controllers/user"
	"edumart/middleware"
	"edumart/models"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	userGroup.Post("/", userController.CreateUser)
	userGroup.Get("/", userController.GetAllUsers)
	userGroup.Get("/:id", userController.GetUserById)
	userGroup.Put("/:id", userController.UpdateUser)
	userGroup.Delete("/:id", userController.DeleteUser)
}
