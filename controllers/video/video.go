package videoController

import (
	"edumart/database"
	"edumart/middleware"
	"edumart/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateVideo attaches a video to a chapter of the course in the path
func CreateVideo(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("courseId"))
	if err != nil || courseID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	reqData := new(struct {
		Title     string `json:"title"`
		URL       string `json:"url"`
		ChapterID uint   `json:"chapterId"`
		Order     int    `json:"order"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)
	if strings.TrimSpace(reqData.Title) == "" {
		errors["title"] = "Title is required!"
	}
	if strings.TrimSpace(reqData.URL) == "" {
		errors["url"] = "URL is required!"
	}
	if reqData.ChapterID == 0 {
		errors["chapterId"] = "Chapter is required!"
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.Where("id = ? AND course_id = ?", reqData.ChapterID, courseID).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found for this course", nil)
	}

	video := models.Video{
		Title:     reqData.Title,
		URL:       reqData.URL,
		ChapterID: reqData.ChapterID,
		CourseID:  uint(courseID),
		Order:     reqData.Order,
	}

	if err := db.Create(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error creating video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video created successfully", video)
}

// GetAllVideos lists videos
func GetAllVideos(c *fiber.Ctx) error {
	var videos []models.Video
	if err := database.Database.Db.Find(&videos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching videos!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched!", videos)
}

// GetVideoById fetches one video
func GetVideoById(c *fiber.Ctx) error {
	var video models.Video
	if err := database.Database.Db.First(&video, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video fetched!", video)
}

// GetVideosByChapter lists a chapter's videos in order
func GetVideosByChapter(c *fiber.Ctx) error {
	var videos []models.Video
	if err := database.Database.Db.
		Where("chapter_id = ?", c.Params("chapterId")).
		Order("\"order\" ASC").
		Find(&videos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching videos!", nil)
	}

	if len(videos) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No videos found for this chapter", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched!", videos)
}

// GetVideosByCourse lists a course's videos
func GetVideosByCourse(c *fiber.Ctx) error {
	var videos []models.Video
	if err := database.Database.Db.
		Where("course_id = ?", c.Params("courseId")).
		Order("\"order\" ASC").
		Find(&videos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching videos!", nil)
	}

	if len(videos) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No videos found for this course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched!", videos)
}

// GetVideosByCourseAndOrder fetches the video at (courseId, order)
func GetVideosByCourseAndOrder(c *fiber.Ctx) error {
	var video models.Video
	if err := database.Database.Db.
		Where("course_id = ? AND \"order\" = ?", c.Params("courseId"), c.Params("order")).
		First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video fetched!", video)
}

// UpdateVideo partially updates a video
func UpdateVideo(c *fiber.Ctx) error {
	var video models.Video
	if err := database.Database.Db.First(&video, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found", nil)
	}

	reqData := new(struct {
		Title     string `json:"title"`
		URL       string `json:"url"`
		ChapterID uint   `json:"chapterId"`
		Order     int    `json:"order"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != "" {
		video.Title = reqData.Title
	}
	if reqData.URL != "" {
		video.URL = reqData.URL
	}
	if reqData.ChapterID != 0 {
		video.ChapterID = reqData.ChapterID
	}
	if reqData.Order > 0 {
		video.Order = reqData.Order
	}

	if err := database.Database.Db.Save(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video updated!", video)
}

// DeleteVideo removes a video
func DeleteVideo(c *fiber.Ctx) error {
	var video models.Video
	if err := database.Database.Db.First(&video, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found", nil)
	}

	if err := database.Database.Db.Delete(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video deleted successfully", nil)
}
