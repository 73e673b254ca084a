package courseController

import (
	"edumart/database"
	"edumart/middleware"
	"edumart/models"
	"edumart/utils"
	courseValidator "edumart/validators/course"

	"github.com/gofiber/fiber/v2"
)

const thumbnailDir = "public/uploads/thumbnails"

// CreateCourse publishes a new course for the authenticated creator
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var creator models.Creator
	if err := db.Where("user_id = ?", userID).First(&creator).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Creator profile required to publish courses!", nil)
	}

	if err := db.First(&models.Category{}, reqData.CategoryID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found", nil)
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		CategoryID:  reqData.CategoryID,
		CreatorID:   creator.ID,
		Thumbnail:   reqData.Thumbnail,
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error creating course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully", course)
}

// GetAllCourses lists courses
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Order("created_at DESC").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched!", courses)
}

// GetCourseById fetches one course
func GetCourseById(c *fiber.Ctx) error {
	var course models.Course
	if err := database.Database.Db.First(&course, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched!", course)
}

// GetCoursesByCreator lists a creator's published courses
func GetCoursesByCreator(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Where("creator_id = ?", c.Params("creatorId")).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching courses!", nil)
	}

	if len(courses) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No courses found for this creator", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched!", courses)
}

// SearchCourses finds courses whose title matches the query
func SearchCourses(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Search query is required!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.Where("title LIKE ?", "%"+query+"%").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error searching courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched!", courses)
}

// UpdateCourse partially updates a course
func UpdateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := database.Database.Db.First(&course, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	reqData := new(courseValidator.CreateRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Price > 0 {
		course.Price = reqData.Price
	}
	if reqData.CategoryID != 0 {
		course.CategoryID = reqData.CategoryID
	}
	if reqData.Thumbnail != "" {
		course.Thumbnail = reqData.Thumbnail
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated!", course)
}

// UploadThumbnail stores a new thumbnail, replacing any previous asset
func UploadThumbnail(c *fiber.Ctx) error {
	var course models.Course
	if err := database.Database.Db.First(&course, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded", nil)
	}

	path, err := utils.SaveUploadedFile(file, thumbnailDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store thumbnail!", nil)
	}

	oldThumbnail := course.Thumbnail
	course.Thumbnail = utils.GetFileURL(path)

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating thumbnail!", nil)
	}

	if oldThumbnail != "" {
		utils.RemoveFile(oldThumbnail[1:])
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail uploaded!", course)
}

// DeleteThumbnail removes the course thumbnail asset
func DeleteThumbnail(c *fiber.Ctx) error {
	var course models.Course
	if err := database.Database.Db.First(&course, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	if course.Thumbnail != "" {
		utils.RemoveFile(course.Thumbnail[1:])
		course.Thumbnail = ""
		if err := database.Database.Db.Save(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error removing thumbnail!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail removed!", course)
}

// DeleteCourse removes a course
func DeleteCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := database.Database.Db.First(&course, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	if err := database.Database.Db.Delete(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully", nil)
}
