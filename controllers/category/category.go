package categoryController

import (
	"edumart/database"
	"edumart/middleware"
	"edumart/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCategory creates a category with a unique name
func CreateCategory(c *fiber.Ctx) error {
	reqData := new(struct {
		Name string `json:"name"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if strings.TrimSpace(reqData.Name) == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category name is required!", nil)
	}

	db := database.Database.Db

	if err := db.Where("name = ?", reqData.Name).First(&models.Category{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category already exists!", nil)
	}

	category := models.Category{Name: reqData.Name}
	if err := db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error creating category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully", category)
}

// GetAllCategories lists categories
func GetAllCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched!", categories)
}

// GetCategoryById fetches one category
func GetCategoryById(c *fiber.Ctx) error {
	var category models.Category
	if err := database.Database.Db.First(&category, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched!", category)
}

// UpdateCategory renames a category
func UpdateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := database.Database.Db.First(&category, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found", nil)
	}

	reqData := new(struct {
		Name string `json:"name"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name != "" {
		category.Name = reqData.Name
	}

	if err := database.Database.Db.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated!", category)
}

// DeleteCategory removes a category
func DeleteCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := database.Database.Db.First(&category, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found", nil)
	}

	if err := database.Database.Db.Delete(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully", nil)
}
