package chapterController

import (
	"edumart/database"
	"edumart/middleware"
	"edumart/models"
	chapterValidator "edumart/validators/chapter"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// CreateChapter inserts a chapter after checking the (courseId, order) pair
// is free. Uniqueness lives here, not in the schema.
func CreateChapter(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChapter").(*chapterValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.Chapter
	if err := db.Where("course_id = ? AND \"order\" = ?", reqData.CourseID, reqData.Order).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			fmt.Sprintf("Chapter with order '%d' already exists for this course.", reqData.Order), nil)
	}

	chapter := models.Chapter{
		Title:    reqData.Title,
		CourseID: reqData.CourseID,
		Order:    reqData.Order,
	}

	if err := db.Create(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error creating chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully", chapter)
}

// GetAllChapters lists chapters
func GetAllChapters(c *fiber.Ctx) error {
	var chapters []models.Chapter
	if err := database.Database.Db.Find(&chapters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching chapters!", nil)
	}

	if len(chapters) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No chapters found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched!", chapters)
}

// GetChapterById fetches one chapter
func GetChapterById(c *fiber.Ctx) error {
	var chapter models.Chapter
	if err := database.Database.Db.First(&chapter, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter fetched!", chapter)
}

// GetChaptersByCourseId lists a course's chapters in order
func GetChaptersByCourseId(c *fiber.Ctx) error {
	var chapters []models.Chapter
	if err := database.Database.Db.
		Where("course_id = ?", c.Params("courseId")).
		Order("\"order\" ASC").
		Find(&chapters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching chapters!", nil)
	}

	if len(chapters) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No chapters found for this course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched!", chapters)
}

// GetChapterByCourseAndOrder fetches a chapter by its composite key
func GetChapterByCourseAndOrder(c *fiber.Ctx) error {
	var chapter models.Chapter
	if err := database.Database.Db.
		Where("course_id = ? AND \"order\" = ?", c.Params("courseId"), c.Params("order")).
		First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter fetched!", chapter)
}

// UpdateChapter partially updates a chapter by ID; moving it to an occupied
// (courseId, order) slot is rejected.
func UpdateChapter(c *fiber.Ctx) error {
	var chapter models.Chapter
	if err := database.Database.Db.First(&chapter, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found", nil)
	}

	reqData := new(chapterValidator.UpdateRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != "" {
		chapter.Title = reqData.Title
	}
	if reqData.CourseID != 0 {
		chapter.CourseID = reqData.CourseID
	}
	if reqData.Order > 0 {
		chapter.Order = reqData.Order
	}

	var conflict models.Chapter
	if err := database.Database.Db.
		Where("course_id = ? AND \"order\" = ? AND id <> ?", chapter.CourseID, chapter.Order, chapter.ID).
		First(&conflict).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			fmt.Sprintf("Chapter with order '%d' already exists for this course.", chapter.Order), nil)
	}

	if err := database.Database.Db.Save(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated!", chapter)
}

// UpdateChapterByOrder retitles the chapter at (courseId, order)
func UpdateChapterByOrder(c *fiber.Ctx) error {
	var chapter models.Chapter
	if err := database.Database.Db.
		Where("course_id = ? AND \"order\" = ?", c.Params("courseId"), c.Params("order")).
		First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found", nil)
	}

	reqData := new(struct {
		Title string `json:"title"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != "" {
		chapter.Title = reqData.Title
	}

	if err := database.Database.Db.Save(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully", chapter)
}

// DeleteChapter removes a chapter by ID
func DeleteChapter(c *fiber.Ctx) error {
	var chapter models.Chapter
	if err := database.Database.Db.First(&chapter, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found", nil)
	}

	if err := database.Database.Db.Delete(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, fmt.Sprintf("Chapter with ID %d has been deleted", chapter.ID), nil)
}

// DeleteChapterByOrder removes the chapter at (courseId, order)
func DeleteChapterByOrder(c *fiber.Ctx) error {
	var chapter models.Chapter
	if err := database.Database.Db.
		Where("course_id = ? AND \"order\" = ?", c.Params("courseId"), c.Params("order")).
		First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found", nil)
	}

	if err := database.Database.Db.Delete(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter deleted successfully", nil)
}
