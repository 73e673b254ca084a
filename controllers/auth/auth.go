package authController

import (
	"edumart/config"
	"edumart/database"
	"edumart/middleware"
	"edumart/models"
	"edumart/utils"
	authValidator "edumart/validators/auth"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Signup registers a new user and returns a token
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if phone number already exists
	if err := db.Where("phone_number = ?", reqData.PhoneNumber).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Phone number is already registered!", nil)
	}

	// Check if email already exists
	if reqData.Email != "" {
		if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:        reqData.Name,
		PhoneNumber: reqData.PhoneNumber,
		Email:       reqData.Email,
		Role:        reqData.Role,
		Password:    string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Signup failed!", nil)
	}

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Name, newUser.Role, newUser.PhoneNumber)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Signup failed!", nil)
	}

	if newUser.Email != "" {
		utils.SendWelcomeEmail(newUser.Email, newUser.Name)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Signup successful", fiber.Map{
		"token": token,
		"user":  newUser,
	})
}

// Login authenticates by phone number and password
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("phone_number = ?", reqData.PhoneNumber).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid credentials", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.PhoneNumber)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{
		"token":       token,
		"userId":      user.ID,
		"name":        user.Name,
		"phoneNumber": user.PhoneNumber,
		"role":        user.Role,
		"email":       user.Email,
	})
}

// GetUserData returns the profile of the authenticated user
func GetUserData(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Access granted", fiber.Map{
		"id":          user.ID,
		"name":        user.Name,
		"phoneNumber": user.PhoneNumber,
		"role":        user.Role,
		"email":       user.Email,
	})
}
