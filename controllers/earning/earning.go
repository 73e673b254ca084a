package earningController

import (
	"edumart/database"
	"edumart/middleware"
	"edumart/models"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// CreateEarning inserts a ledger entry directly (administrative path; paid
// accruals go through the settlement engine).
func CreateEarning(c *fiber.Ctx) error {
	reqData := new(struct {
		CreatorID     uint    `json:"creatorId"`
		CourseID      uint    `json:"courseId"`
		TotalEarnings float64 `json:"totalEarnings"`
		Month         int     `json:"month"`
		Year          int     `json:"year"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.CreatorID == 0 || reqData.CourseID == 0 || reqData.TotalEarnings == 0 || reqData.Month == 0 || reqData.Year == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			"All fields (creatorId, courseId, totalEarnings, month, year) are required!", nil)
	}

	earning := models.Earning{
		CreatorID:     reqData.CreatorID,
		CourseID:      reqData.CourseID,
		TotalEarnings: reqData.TotalEarnings,
		Month:         reqData.Month,
		Year:          reqData.Year,
	}

	if err := database.Database.Db.Create(&earning).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error creating earning!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Earning created successfully", earning)
}

// GetAllEarnings lists ledger entries
func GetAllEarnings(c *fiber.Ctx) error {
	var earnings []models.Earning
	if err := database.Database.Db.Find(&earnings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching earnings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Earnings fetched!", earnings)
}

// GetEarningById fetches one ledger entry
func GetEarningById(c *fiber.Ctx) error {
	var earning models.Earning
	if err := database.Database.Db.First(&earning, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Earning not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Earning fetched!", earning)
}

// GetEarningsByCreatorId lists a creator's ledger entries
func GetEarningsByCreatorId(c *fiber.Ctx) error {
	var earnings []models.Earning
	if err := database.Database.Db.
		Where("creator_id = ?", c.Params("creatorId")).
		Order("year DESC, month DESC").
		Find(&earnings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching earnings by creator ID!", nil)
	}

	if len(earnings) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No earnings found for this creator", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Earnings fetched!", earnings)
}

// GetEarningsByCourseId lists a course's ledger entries
func GetEarningsByCourseId(c *fiber.Ctx) error {
	var earnings []models.Earning
	if err := database.Database.Db.
		Where("course_id = ?", c.Params("courseId")).
		Order("year DESC, month DESC").
		Find(&earnings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching earnings by course ID!", nil)
	}

	if len(earnings) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No earnings found for this course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Earnings fetched!", earnings)
}

// UpdateEarning partially updates a ledger entry
func UpdateEarning(c *fiber.Ctx) error {
	var earning models.Earning
	if err := database.Database.Db.First(&earning, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Earning not found", nil)
	}

	reqData := new(struct {
		CreatorID     uint    `json:"creatorId"`
		CourseID      uint    `json:"courseId"`
		TotalEarnings float64 `json:"totalEarnings"`
		Month         int     `json:"month"`
		Year          int     `json:"year"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.CreatorID != 0 {
		earning.CreatorID = reqData.CreatorID
	}
	if reqData.CourseID != 0 {
		earning.CourseID = reqData.CourseID
	}
	if reqData.TotalEarnings != 0 {
		earning.TotalEarnings = reqData.TotalEarnings
	}
	if reqData.Month != 0 {
		earning.Month = reqData.Month
	}
	if reqData.Year != 0 {
		earning.Year = reqData.Year
	}

	if err := database.Database.Db.Save(&earning).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating earning!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Earning updated!", earning)
}

// DeleteEarning removes a ledger entry
func DeleteEarning(c *fiber.Ctx) error {
	var earning models.Earning
	if err := database.Database.Db.First(&earning, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Earning not found", nil)
	}

	if err := database.Database.Db.Delete(&earning).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting earning!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, fmt.Sprintf("Earning with ID %d has been deleted.", earning.ID), nil)
}
