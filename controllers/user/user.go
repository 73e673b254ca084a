package userController

import (
	"edumart/config"
	"edumart/database"
	"edumart/middleware"
	"edumart/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser creates a user directly (admin surface)
func CreateUser(c *fiber.Ctx) error {
	reqData := new(struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phoneNumber"`
		Email       string `json:"email"`
		Role        string `json:"role"`
		Password    string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.PhoneNumber == "" || reqData.Password == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Phone number and password are required!", nil)
	}

	db := database.Database.Db

	if err := db.Where("phone_number = ?", reqData.PhoneNumber).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Phone number is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user := models.User{
		Name:        reqData.Name,
		PhoneNumber: reqData.PhoneNumber,
		Email:       reqData.Email,
		Role:        reqData.Role,
		Password:    string(hashedPassword),
	}

	if err := db.Create(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error creating user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully", user)
}

// GetAllUsers lists users
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched!", users)
}

// GetUserById fetches one user
func GetUserById(c *fiber.Ctx) error {
	var user models.User
	if err := database.Database.Db.First(&user, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched!", user)
}

// UpdateUser partially updates a user; empty fields are left unchanged
func UpdateUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.Database.Db.First(&user, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	reqData := new(struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phoneNumber"`
		Email       string `json:"email"`
		Role        string `json:"role"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.PhoneNumber != "" {
		user.PhoneNumber = reqData.PhoneNumber
	}
	if reqData.Email != "" {
		user.Email = reqData.Email
	}
	if reqData.Role != "" {
		user.Role = reqData.Role
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated!", user)
}

// DeleteUser removes a user and their creator profile
func DeleteUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.Database.Db.First(&user, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		// Owned creator profile goes with the user
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Creator{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully", nil)
}
