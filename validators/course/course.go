package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rajdwivedi/aeonaxy-server/middleware"
	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/store"
)

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CourseDetails)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		// Validate Categories
		if reqData.Categories == nil {
			errors["categories"] = "Categories are required!"
		}

		// Validate Price; zero is a valid price, absent is not
		if reqData.Price == nil {
			errors["price"] = "Price is required and must be a number!"
		}

		// Validate Skill level
		if strings.TrimSpace(reqData.SkillLevel) == "" {
			errors["skill_lvl"] = "Skill level is required!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CreateCourseAsOne validates the combined course-plus-modules payload.
func CreateCourseAsOne() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Data struct {
				Course struct {
					models.CourseDetails
					Modules []models.ModuleDetails `json:"modules"`
				} `json:"course"`
			} `json:"data"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		course := reqData.Data.Course
		errors := make(map[string]string)
		if strings.TrimSpace(course.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(course.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if course.Categories == nil {
			errors["categories"] = "Categories are required!"
		}
		if course.Price == nil {
			errors["price"] = "Price is required and must be a number!"
		}
		if strings.TrimSpace(course.SkillLevel) == "" {
			errors["skill_lvl"] = "Skill level is required!"
		}
		for _, m := range course.Modules {
			if m.SortingIndex == nil {
				errors["modules"] = "Sorting index is required and must be a number!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseDetails", &course.CourseDetails)
		c.Locals("validatedCourseModules", course.Modules)
		return c.Next()
	}
}

// CourseID validates the course id carried in the request body.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID string `json:"courseId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if strings.TrimSpace(reqData.CourseID) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is missing.", nil)
		}

		courseID, err := store.ParseID(reqData.CourseID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// UpdateCourse validates a partial course update: the id plus at least one
// updatable field.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID string `json:"courseId"`
			models.CourseUpdate
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if strings.TrimSpace(reqData.CourseID) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is missing.", nil)
		}

		courseID, err := store.ParseID(reqData.CourseID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		if reqData.Title == nil && reqData.Description == nil && reqData.Categories == nil &&
			reqData.Price == nil && reqData.SkillLevel == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields to update.", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", &reqData.CourseUpdate)
		return c.Next()
	}
}
