package chapterRoutes

import (
	chapterController "edumart/controllers/chapter"
	"edumart/middleware"
	"edumart/models"
	chapterValidator "edumart/validators/chapter"

	"github.com/gofiber/fiber/v2"
)

func SetupChapterRoutes(app *fiber.App) {
	chapterGroup := app.Group("/chapters")

	chapterGroup.Post("/",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleCreator, models.RoleAdmin),
		chapterValidator.Create(),
		chapterController.CreateChapter,
	)
	chapterGroup.Get("/", chapterController.GetAllChapters)

	// Composite (courseId, order) surface
	chapterGroup.Get("/:courseId/chapters", chapterController.GetChaptersByCourseId)
	chapterGroup.Get("/:courseId/chapters/order/:order", chapterController.GetChapterByCourseAndOrder)
	chapterGroup.Put("/:courseId/chapters/order/:order", middleware.JWTMiddleware, chapterController.UpdateChapterByOrder)
	chapterGroup.Delete("/:courseId/chapters/order/:order", middleware.JWTMiddleware, chapterController.DeleteChapterByOrder)

	chapterGroup.Get("/:id", chapterController.GetChapterById)
	chapterGroup.Put("/:id", middleware.JWTMiddleware, chapterController.UpdateChapter)
	chapterGroup.Delete("/:id", middleware.JWTMiddleware, chapterController.DeleteChapter)
}
