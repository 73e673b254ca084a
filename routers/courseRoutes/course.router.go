package courseRoutes

import (
	courseController "edumart/controllers/course"
	"edumart/middleware"
	"edumart/models"
	courseValidator "edumart/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Post("/",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleCreator, models.RoleAdmin),
		courseValidator.Create(),
		courseController.CreateCourse,
	)
	courseGroup.Get("/", courseController.GetAllCourses)
	courseGroup.Get("/search", courseController.SearchCourses)
	courseGroup.Get("/creator/:creatorId", courseController.GetCoursesByCreator)
	courseGroup.Get("/:id", courseController.GetCourseById)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator, models.RoleAdmin), courseController.UpdateCourse)
	courseGroup.Post("/:id/thumbnail", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator, models.RoleAdmin), courseController.UploadThumbnail)
	courseGroup.Delete("/:id/thumbnail", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator, models.RoleAdmin), courseController.DeleteThumbnail)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator, models.RoleAdmin), courseController.DeleteCourse)
}
