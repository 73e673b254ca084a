package linkController

import (
	"edumart/database"
	"edumart/middleware"
	"edumart/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateLink attaches a reference link to a chapter
func CreateLink(c *fiber.Ctx) error {
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

	if err := db.First(&models.Chapter{}, reqData.ChapterID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found", nil)
	}

	link := models.Link{
		Title:     reqData.Title,
		URL:       reqData.URL,
		ChapterID: reqData.ChapterID,
		Order:     reqData.Order,
	}

	if err := db.Create(&link).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error creating link!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Link created successfully", link)
}

// GetAllLinks lists links
func GetAllLinks(c *fiber.Ctx) error {
	var links []models.Link
	if err := database.Database.Db.Find(&links).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching links!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Links fetched!", links)
}

// GetLinkById fetches one link
func GetLinkById(c *fiber.Ctx) error {
	var link models.Link
	if err := database.Database.Db.First(&link, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Link not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Link fetched!", link)
}

// GetLinksByChapterId lists a chapter's links in order
func GetLinksByChapterId(c *fiber.Ctx) error {
	var links []models.Link
	if err := database.Database.Db.
		Where("chapter_id = ?", c.Params("chapterId")).
		Order("\"order\" ASC").
		Find(&links).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching links!", nil)
	}

	if len(links) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No links found for this chapter", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Links fetched!", links)
}

// UpdateLink partially updates a link
func UpdateLink(c *fiber.Ctx) error {
	var link models.Link
	if err := database.Database.Db.First(&link, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Link not found", nil)
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
		link.Title = reqData.Title
	}
	if reqData.URL != "" {
		link.URL = reqData.URL
	}
	if reqData.ChapterID != 0 {
		link.ChapterID = reqData.ChapterID
	}
	if reqData.Order > 0 {
		link.Order = reqData.Order
	}

	if err := database.Database.Db.Save(&link).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating link!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Link updated!", link)
}

// DeleteLink removes a link
func DeleteLink(c *fiber.Ctx) error {
	var link models.Link
	if err := database.Database.Db.First(&link, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Link not found", nil)
	}

	if err := database.Database.Db.Delete(&link).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting link!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Link deleted successfully", nil)
}
