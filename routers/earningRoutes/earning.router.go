package earningRoutes

import (
	earningController "edumart/controllers/earning"
	"edumart/middleware"
	"edumart/models"

	"github.com/gofiber/fiber/v2"
)

func SetupEarningRoutes(app *fiber.App) {
	earningGroup := app.Group("/earnings", middleware.JWTMiddleware)

	earningGroup.Post("/", middleware.RequireRole(models.RoleAdmin), earningController.CreateEarning)
	earningGroup.Get("/", middleware.RequireRole(models.RoleAdmin), earningController.GetAllEarnings)
	earningGroup.Get("/creator/:creatorId", middleware.RequireRole(models.RoleCreator, models.RoleAdmin), earningController.GetEarningsByCreatorId)
	earningGroup.Get("/course/:courseId", middleware.RequireRole(models.RoleCreator, models.RoleAdmin), earningController.GetEarningsByCourseId)
	earningGroup.Get("/:id", middleware.RequireRole(models.RoleAdmin), earningController.GetEarningById)
	earningGroup.Put("/:id", middleware.RequireRole(models.RoleAdmin), earningController.UpdateEarning)
	earningGroup.Delete("/:id", middleware.RequireRole(models.RoleAdmin), earningController.DeleteEarning)
}
