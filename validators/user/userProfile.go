package userValidator

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/rajdwivedi/aeonaxy-server/middleware"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// UpdateProfile validates a profile update request. The original email
// identifies the account; every other field is optional.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email           string `json:"email" form:"email"`
			UpdatedName     string `json:"updatedName" form:"updatedName"`
			UpdatedEmail    string `json:"updatedEmail" form:"updatedEmail"`
			UpdatedPassword string `json:"updatedPassword" form:"updatedPassword"`
			IsActive        *bool  `json:"isActive" form:"isActive"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" {
			errors["email"] = "No original email provided!"
		}
		if reqData.UpdatedEmail != "" && !isValidEmail(reqData.UpdatedEmail) {
			errors["updatedEmail"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}
