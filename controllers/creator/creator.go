package creatorController

import (
	"edumart/database"
	"edumart/middleware"
	"edumart/models"
	"edumart/utils"
	creatorValidator "edumart/validators/creator"

	"github.com/gofiber/fiber/v2"
)

const profilePictureDir = "public/uploads/profile_pictures"

// RegisterCreator creates the creator profile for the authenticated user.
// CheckCreatorMiddleware has already verified role and one-profile-per-user.
func RegisterCreator(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreator").(*creatorValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	creator := models.Creator{
		UserID:         userID,
		Bio:            reqData.Bio,
		EducationLevel: reqData.EducationLevel,
		Experience:     reqData.Experience,
		Skills:         reqData.Skills,
		Location:       reqData.Location,
		SocialLinks:    reqData.SocialLinks,
		BankAccount:    reqData.BankAccount,
		BankType:       reqData.BankType,
	}

	// Optional profile picture upload
	if file, err := c.FormFile("profilePicture"); err == nil {
		path, err := utils.SaveUploadedFile(file, profilePictureDir)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store profile picture!", nil)
		}
		creator.ProfilePicture = utils.GetFileURL(path)
	}

	if err := database.Database.Db.Create(&creator).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error creating creator profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Creator registered successfully", creator)
}

// GetCreatorById fetches a creator profile
func GetCreatorById(c *fiber.Ctx) error {
	var creator models.Creator
	if err := database.Database.Db.First(&creator, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Creator not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Creator fetched!", creator)
}

// GetCreatorByUserId fetches a creator profile via the owning user
func GetCreatorByUserId(c *fiber.Ctx) error {
	var creator models.Creator
	if err := database.Database.Db.Where("user_id = ?", c.Params("userId")).First(&creator).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Creator not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Creator fetched!", creator)
}

// UpdateCreator partially updates a creator profile
func UpdateCreator(c *fiber.Ctx) error {
	var creator models.Creator
	if err := database.Database.Db.First(&creator, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Creator not found", nil)
	}

	reqData := new(creatorValidator.RegisterRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Bio != "" {
		creator.Bio = reqData.Bio
	}
	if reqData.EducationLevel != "" {
		creator.EducationLevel = reqData.EducationLevel
	}
	if reqData.Experience != "" {
		creator.Experience = reqData.Experience
	}
	if reqData.Skills != "" {
		creator.Skills = reqData.Skills
	}
	if reqData.Location != "" {
		creator.Location = reqData.Location
	}
	if reqData.SocialLinks != "" {
		creator.SocialLinks = reqData.SocialLinks
	}
	if reqData.BankAccount != "" {
		creator.BankAccount = reqData.BankAccount
	}
	if reqData.BankType != "" {
		creator.BankType = reqData.BankType
	}

	if err := database.Database.Db.Save(&creator).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating creator!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Creator updated!", creator)
}

// UpdateProfilePicture replaces the creator's profile picture. The previous
// asset is removed once the new one is stored.
func UpdateProfilePicture(c *fiber.Ctx) error {
	var creator models.Creator
	if err := database.Database.Db.First(&creator, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Creator not found", nil)
	}

	file, err := c.FormFile("profilePicture")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded", nil)
	}

	path, err := utils.SaveUploadedFile(file, profilePictureDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store profile picture!", nil)
	}

	oldPicture := creator.ProfilePicture
	creator.ProfilePicture = utils.GetFileURL(path)

	if err := database.Database.Db.Save(&creator).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating profile picture!", nil)
	}

	if oldPicture != "" {
		utils.RemoveFile(oldPicture[1:]) // stored URLs are rooted at "/"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile picture updated!", creator)
}
