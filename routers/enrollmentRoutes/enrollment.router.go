package enrollmentRoutes

import (
	enrollmentController "edumart/controllers/enrollment"
	"edumart/middleware"
	"edumart/models"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/enrollments", middleware.JWTMiddleware)

	enrollmentGroup.Post("/", middleware.RequireRole(models.RoleAdmin), enrollmentController.CreateEnrollment)
	enrollmentGroup.Get("/", middleware.RequireRole(models.RoleAdmin), enrollmentController.GetAllEnrollments)
	enrollmentGroup.Get("/check/:userId/:courseId", enrollmentController.CheckEnrollment)
	enrollmentGroup.Get("/user/:userId", enrollmentController.GetEnrolledCourses)
	enrollmentGroup.Get("/course/:courseId/count", enrollmentController.GetEnrollmentCountByCourse)
	enrollmentGroup.Get("/course/:courseId", enrollmentController.GetEnrollmentsByCourse)
	enrollmentGroup.Get("/:id", enrollmentController.GetEnrollmentById)
	enrollmentGroup.Put("/:id", middleware.RequireRole(models.RoleAdmin), enrollmentController.UpdateEnrollment)
	enrollmentGroup.Delete("/:id", middleware.RequireRole(models.RoleAdmin), enrollmentController.DeleteEnrollment)
}
