package middleware

import (
	"edumart/database"
	"edumart/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that allows only users holding one of the
// given roles. Must run after JWTMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized. Token missing or invalid.", nil)
		}

		var user models.User
		if err := database.Database.Db.First(&user, userID).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user.", nil)
		}

		for _, role := range roles {
			if user.Role == role {
				c.Locals("userRole", user.Role)
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "Access forbidden. Insufficient permissions.", nil)
	}
}

// CheckCreatorMiddleware blocks creator registration for users that already
// have a creator profile or do not hold the creator role.
func CheckCreatorMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized. Token missing or invalid.", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return JsonResponse(c, fiber.StatusNotFound, false, "User not found.", nil)
	}

	if user.Role != models.RoleCreator {
		return JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to register as a creator.", nil)
	}

	var existing models.Creator
	err := database.Database.Db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return JsonResponse(c, fiber.StatusBadRequest, false, "You are already registered as a creator.", nil)
	}
	if err != gorm.ErrRecordNotFound {
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking creator profile!", nil)
	}

	return c.Next()
}
