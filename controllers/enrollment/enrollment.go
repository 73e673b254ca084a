package enrollmentController

import (
	"edumart/database"
	"edumart/middleware"
	"edumart/models"

	"github.com/gofiber/fiber/v2"
)

// CreateEnrollment grants course access directly (administrative path; paid
// enrollments are created by the settlement engine).
func CreateEnrollment(c *fiber.Ctx) error {
	reqData := new(struct {
		UserID   uint `json:"userId"`
		CourseID uint `json:"courseId"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.UserID == 0 || reqData.CourseID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID and Course ID are required!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.User{}, reqData.UserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}
	if err := db.First(&models.Course{}, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	enrollment := models.Enrollment{
		UserID:   reqData.UserID,
		CourseID: reqData.CourseID,
	}

	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error creating enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment created successfully", enrollment)
}

// GetAllEnrollments lists enrollments
func GetAllEnrollments(c *fiber.Ctx) error {
	var enrollments []models.Enrollment
	if err := database.Database.Db.Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched!", enrollments)
}

// GetEnrollmentById fetches one enrollment
func GetEnrollmentById(c *fiber.Ctx) error {
	var enrollment models.Enrollment
	if err := database.Database.Db.First(&enrollment, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched!", enrollment)
}

// CheckEnrollment reports whether a user holds access to a course
func CheckEnrollment(c *fiber.Ctx) error {
	var enrollment models.Enrollment
	err := database.Database.Db.
		Where("user_id = ? AND course_id = ?", c.Params("userId"), c.Params("courseId")).
		First(&enrollment).Error

	enrolled := err == nil
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment checked!", fiber.Map{
		"enrolled": enrolled,
	})
}

// GetEnrolledCourses lists the courses a user is enrolled in
func GetEnrolledCourses(c *fiber.Ctx) error {
	var enrollments []models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ?", c.Params("userId")).
		Preload("Course").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching enrollments!", nil)
	}

	courses := make([]models.Course, 0, len(enrollments))
	for _, enrollment := range enrollments {
		courses = append(courses, enrollment.Course)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched!", courses)
}

// GetEnrollmentCountByCourse counts enrollments for a course
func GetEnrollmentCountByCourse(c *fiber.Ctx) error {
	var count int64
	if err := database.Database.Db.
		Model(&models.Enrollment{}).
		Where("course_id = ?", c.Params("courseId")).
		Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error counting enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment count fetched!", fiber.Map{
		"count": count,
	})
}

// GetEnrollmentsByCourse lists a course's enrollments
func GetEnrollmentsByCourse(c *fiber.Ctx) error {
	var enrollments []models.Enrollment
	if err := database.Database.Db.
		Where("course_id = ?", c.Params("courseId")).
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched!", enrollments)
}

// UpdateEnrollment reassigns an enrollment
func UpdateEnrollment(c *fiber.Ctx) error {
	var enrollment models.Enrollment
	if err := database.Database.Db.First(&enrollment, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found", nil)
	}

	reqData := new(struct {
		UserID   uint `json:"userId"`
		CourseID uint `json:"courseId"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.UserID != 0 {
		enrollment.UserID = reqData.UserID
	}
	if reqData.CourseID != 0 {
		enrollment.CourseID = reqData.CourseID
	}

	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated!", enrollment)
}

// DeleteEnrollment revokes course access
func DeleteEnrollment(c *fiber.Ctx) error {
	var enrollment models.Enrollment
	if err := database.Database.Db.First(&enrollment, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found", nil)
	}

	if err := database.Database.Db.Delete(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment deleted successfully", nil)
}
