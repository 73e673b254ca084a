package chapterValidator

import (
	"edumart/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest is the validated chapter creation payload
type CreateRequest struct {
	Title    string `json:"title"`
	CourseID uint   `json:"courseId"`
	Order    int    `json:"order"`
}

// UpdateRequest carries the partial chapter update payload
type UpdateRequest struct {
	Title    string `json:"title"`
	CourseID uint   `json:"courseId"`
	Order    int    `json:"order"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Valid 'title' is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "Valid 'courseId' is required!"
		}
		if reqData.Order <= 0 {
			errors["order"] = "Valid 'order' is required and must be a positive number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChapter", reqData)
		return c.Next()
	}
}
