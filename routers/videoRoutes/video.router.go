package videoRoutes

import (
	videoController "edumart/controllers/video"
	"edumart/middleware"
	"edumart/models"

	"github.com/gofiber/fiber/v2"
)

func SetupVideoRoutes(app *fiber.App) {
	videoGroup := app.Group("/videos")

	videoGroup.Get("/", videoController.GetAllVideos)
	videoGroup.Get("/chapter/:chapterId", videoController.GetVideosByChapter)
	videoGroup.Get("/course/:courseId/order/:order", videoController.GetVideosByCourseAndOrder)
	videoGroup.Get("/course/:courseId", videoController.GetVideosByCourse)
	videoGroup.Get("/:id", videoController.GetVideoById)
	videoGroup.Post("/:courseId", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator, models.RoleAdmin), videoController.CreateVideo)
	videoGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator, models.RoleAdmin), videoController.UpdateVideo)
	videoGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCreator, models.RoleAdmin), videoController.DeleteVideo)
}
