package creatorValidator

import (
	"edumart/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RegisterRequest is the validated creator registration payload. The profile
// picture arrives as a separate multipart file, not in this body.
type RegisterRequest struct {
	Bio            string `json:"bio" form:"bio"`
	EducationLevel string `json:"educationLevel" form:"educationLevel" validate:"omitempty,oneof=certificate diploma degree masters phd"`
	Experience     string `json:"experience" form:"experience"`
	Skills         string `json:"skills" form:"skills"`
	Location       string `json:"location" form:"location"`
	SocialLinks    string `json:"socialLinks" form:"socialLinks"`
	BankAccount    string `json:"bankAccount" form:"bankAccount"`
	BankType       string `json:"bankType" form:"bankType"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				if fieldErr.Field() == "EducationLevel" {
					errors["educationLevel"] = "Education level must be one of: certificate, diploma, degree, masters, phd!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreator", reqData)
		return c.Next()
	}
}
